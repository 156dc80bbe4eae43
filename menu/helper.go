package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"organizer/domain"
	"organizer/files"
	"organizer/service"
)

var errNoPath = errors.New("не указан файл для импорта")

// notFound turns a missing record into a message; other errors pass.
func notFound(c *Console, err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		c.Println(msg)
		return nil
	}
	return err
}

func PrintNote(c *Console, n domain.Note) {
	c.Printf("%d: %s (Создано: %s)\n", n.ID, n.Title, n.Timestamp)
}

func PrintTask(c *Console, t domain.Task) {
	c.Printf("%d: %s | Статус: %s | Приоритет: %s | Срок: %s\n", t.ID, t.Title, t.Status(), t.Priority, t.DueDate)
}

func PrintContact(c *Console, ct domain.Contact) {
	c.Printf("%d: %s | Телефон: %s | Email: %s\n", ct.ID, ct.Name, ct.Phone, ct.Email)
}

func PrintRecord(c *Console, r domain.FinanceRecord) {
	c.Printf("%d: %s | Категория: %s | Дата: %s | Описание: %s\n",
		r.ID, files.FormatAmount(r.Amount), r.Category, r.Date, r.Description)
}

func PrintSummary(c *Console, s service.Summary) {
	c.Printf("Финансовый отчёт за период с %s по %s:\n", s.From, s.To)
	c.Printf("Общий доход: %s\n", service.Cents(s.Income))
	c.Printf("Общие расходы: %s\n", service.Cents(s.Expense))
	c.Printf("Баланс: %s\n", service.Cents(s.Net))
}

func PrintBreakdown(c *Console, rows []service.CategorySummary) {
	if len(rows) == 0 {
		c.Println("Нет записей за период.")
		return
	}
	c.Printf("%-20s %12s %12s %12s\n", "Категория", "Доход", "Расходы", "Итого")
	for _, r := range rows {
		c.Printf("%-20s %12s %12s %12s\n", r.Name, service.Cents(r.Income), service.Cents(r.Expense), service.Cents(r.Net))
	}
}

// printAll prints every record or empty when there are none.
func printAll[T any](c *Console, records []T, empty string, line func(*Console, T)) {
	if len(records) == 0 {
		c.Println(empty)
		return
	}
	for _, r := range records {
		line(c, r)
	}
}

func exportCollection[T domain.Record[T]](ctx context.Context, d *Deps, m *service.Manager[T], done string) error {
	raw, err := d.IO.ReadLine("Формат (csv/json/yaml, пусто = csv): ")
	if err != nil {
		return err
	}
	f, err := files.ParseFormat(raw)
	if err != nil {
		return err
	}
	path, n, err := m.Export(ctx, f)
	if err != nil {
		return err
	}
	d.IO.Printf("%s %s! Записей: %d\n", done, path, n)
	return nil
}

// importCollection offers the last imported path as the default and
// picks the format from the file extension.
func importCollection[T domain.Record[T]](ctx context.Context, d *Deps, m *service.Manager[T], done string) error {
	name := string(m.Collection())
	last, err := d.State.LastImport(name)
	if err != nil {
		slog.Warn("state unreadable", "error", err)
		last = ""
	}
	prompt := "Введите имя файла для импорта (csv/json/yaml): "
	if last != "" {
		prompt = fmt.Sprintf("Введите имя файла для импорта (пусто = %s): ", last)
	}
	path, err := d.IO.ReadLine(prompt)
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = last
	}
	if path == "" {
		return errNoPath
	}

	n, err := m.Import(ctx, path, files.FormatOf(path))
	if err != nil {
		return err
	}
	if err := d.State.SaveLastImport(name, path); err != nil {
		slog.Warn("state not saved", "error", err)
	}
	d.IO.Printf("%s Записей: %d\n", done, n)
	return nil
}
