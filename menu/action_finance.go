package menu

import (
	"context"
	"errors"

	"organizer/calc"
)

func readRecordFields(c *Console) (amount float64, category, date, description string, err error) {
	if amount, err = c.ReadAmount("Введите сумму операции (положительное число для доходов, отрицательное для расходов): "); err != nil {
		return
	}
	if category, err = c.ReadLine("Введите категорию операции: "); err != nil {
		return
	}
	if date, err = c.ReadLine("Введите дату операции (ДД-ММ-ГГГГ): "); err != nil {
		return
	}
	description, err = c.ReadLine("Введите описание операции: ")
	return
}

func readPeriod(c *Console, optional bool) (from, to string, err error) {
	suffix := ": "
	if optional {
		suffix = ", пусто = без ограничения: "
	}
	if from, err = c.ReadLine("Введите начальную дату (ДД-ММ-ГГГГ)" + suffix); err != nil {
		return
	}
	to, err = c.ReadLine("Введите конечную дату (ДД-ММ-ГГГГ)" + suffix)
	return
}

func actionAddRecord(ctx context.Context, d *Deps) error {
	amount, category, date, description, err := readRecordFields(d.IO)
	if err != nil {
		return err
	}
	if _, err := d.Finance.Add(ctx, amount, category, date, description); err != nil {
		return err
	}
	d.IO.Println("Финансовая запись успешно добавлена!")
	return nil
}

func actionListRecords(ctx context.Context, d *Deps) error {
	records, err := d.Finance.List(ctx)
	if err != nil {
		return err
	}
	printAll(d.IO, records, "Нет доступных финансовых записей.", PrintRecord)
	return nil
}

func actionFilterRecords(ctx context.Context, d *Deps) error {
	category, err := d.IO.ReadLine("Введите категорию (пусто = все): ")
	if err != nil {
		return err
	}
	from, to, err := readPeriod(d.IO, true)
	if err != nil {
		return err
	}
	records, err := d.Finance.Filter(ctx, category, from, to)
	if err != nil {
		return err
	}
	printAll(d.IO, records, "Записи не найдены.", PrintRecord)
	return nil
}

func actionFinanceReport(ctx context.Context, d *Deps) error {
	from, to, err := readPeriod(d.IO, false)
	if err != nil {
		return err
	}
	s, err := d.Finance.Report(ctx, from, to)
	if err != nil {
		return err
	}
	PrintSummary(d.IO, s)
	return nil
}

func actionFinanceBreakdown(ctx context.Context, d *Deps) error {
	from, to, err := readPeriod(d.IO, false)
	if err != nil {
		return err
	}
	rows, err := d.Finance.Breakdown(ctx, from, to)
	if err != nil {
		return err
	}
	PrintBreakdown(d.IO, rows)
	return nil
}

func actionEditRecord(ctx context.Context, d *Deps) error {
	id, err := d.IO.ReadInt("Введите ID записи для редактирования: ")
	if err != nil {
		return err
	}
	amount, category, date, description, err := readRecordFields(d.IO)
	if err != nil {
		return err
	}
	if _, err := d.Finance.Edit(ctx, id, amount, category, date, description); err != nil {
		return notFound(d.IO, err, "Запись не найдена.")
	}
	d.IO.Println("Финансовая запись успешно отредактирована!")
	return nil
}

func actionDeleteRecord(ctx context.Context, d *Deps) error {
	id, err := d.IO.ReadInt("Введите ID записи для удаления: ")
	if err != nil {
		return err
	}
	ok, err := d.Finance.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		d.IO.Println("Запись не найдена.")
		return nil
	}
	d.IO.Println("Финансовая запись успешно удалена!")
	return nil
}

func actionExportFinance(ctx context.Context, d *Deps) error {
	return exportCollection(ctx, d, d.Finance.Manager, "Финансовые записи успешно экспортированы в")
}

func actionImportFinance(ctx context.Context, d *Deps) error {
	return importCollection(ctx, d, d.Finance.Manager, "Финансовые записи успешно импортированы.")
}

func actionCalc(_ context.Context, d *Deps) error {
	expr, err := d.IO.ReadLine("Ввод арифметического выражения: ")
	if err != nil {
		return err
	}
	_ = PrintCalc(d.IO, expr)
	return nil
}

// PrintCalc evaluates expr and prints the result or the reason it failed.
func PrintCalc(c *Console, expr string) error {
	v, err := calc.Eval(expr)
	switch {
	case err == nil:
		c.Println(v.String())
	case errors.Is(err, calc.ErrForbiddenChar):
		c.Println("Вы ввели запрещенный символ (разрешены только 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, +, -, *, /)")
	case errors.Is(err, calc.ErrDivisionByZero):
		c.Println("Ошибка деления на ноль!")
	default:
		c.Println("Ошибка при вычислении:", err)
	}
	return err
}
