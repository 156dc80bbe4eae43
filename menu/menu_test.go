package menu

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organizer/domain"
	"organizer/facade"
	"organizer/files"
	"organizer/repo"
	"organizer/service"
	"organizer/state"
)

type harness struct {
	dir  string
	deps *Deps
	out  *bytes.Buffer
}

func newHarness(t *testing.T, input string) harness {
	t.Helper()
	dir := t.TempDir()
	b := repo.NewFileBackend(dir, nil)
	f := domain.Factory{Now: func() time.Time { return time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC) }}

	notes := service.NewManager[domain.Note](domain.Notes, repo.NewStore[domain.Note]("notes", b), files.NoteCodec{}, dir)
	tasks := service.NewManager[domain.Task](domain.Tasks, repo.NewStore[domain.Task]("tasks", b), files.TaskCodec{}, dir)
	contacts := service.NewManager[domain.Contact](domain.Contacts, repo.NewStore[domain.Contact]("contacts", b), files.ContactCodec{}, dir)
	finance := service.NewManager[domain.FinanceRecord](domain.Finance, repo.NewStore[domain.FinanceRecord]("finance", b), files.FinanceCodec{}, dir)

	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader(input), out)
	notes.OnCorrupt(c.ReportCorrupt)

	return harness{
		dir: dir,
		out: out,
		deps: &Deps{
			Notes:    facade.NoteFacade{Manager: notes, F: f},
			Tasks:    facade.TaskFacade{Manager: tasks, F: f},
			Contacts: facade.ContactFacade{Manager: contacts, F: f},
			Finance:  facade.FinanceFacade{Manager: finance, F: f, Ana: service.NewAnalyticsService(finance)},
			State:    state.New(dir),
			IO:       c,
		},
	}
}

func (h harness) run(t *testing.T) string {
	t.Helper()
	m, err := Default()
	require.NoError(t, err)
	require.NoError(t, Run(context.Background(), m, h.deps))
	return h.out.String()
}

func lines(in ...string) string { return strings.Join(in, "\n") + "\n" }

func TestNotesFlow(t *testing.T) {
	h := newHarness(t, lines("1", "1", "Shopping", "milk", "2", "3", "1", "3", "99", "8", "6"))
	out := h.run(t)

	assert.Contains(t, out, "Заметка успешно добавлена!")
	assert.Contains(t, out, "1: Shopping (Создано: 01-03-2024 09:05:00)")
	assert.Contains(t, out, "Заголовок: Shopping\nСодержимое:\nmilk\nДата и время: 01-03-2024 09:05:00")
	assert.Contains(t, out, "Заметка не найдена.")
	assert.True(t, strings.HasSuffix(out, "Выход из приложения.\n"))
}

func TestEmptyListsAndInvalidChoice(t *testing.T) {
	h := newHarness(t, lines("abc", "9", "1", "2", "8", "2", "2", "8", "6"))
	out := h.run(t)

	assert.Equal(t, 2, strings.Count(out, "Некорректный ввод. Пожалуйста, выберите действие из меню."))
	assert.Contains(t, out, "Нет доступных заметок.")
	assert.Contains(t, out, "Нет доступных задач.")
}

func TestInvalidIDIsReportedAndLoopContinues(t *testing.T) {
	h := newHarness(t, lines("2", "3", "xyz", "2", "8", "6"))
	out := h.run(t)

	assert.Contains(t, out, "Ошибка: некорректное число")
	assert.Contains(t, out, "Нет доступных задач.")
}

func TestInputEndStopsRun(t *testing.T) {
	h := newHarness(t, "1\n")
	out := h.run(t)
	assert.Contains(t, out, "Управление заметками:")
}

func TestTasksMarkDoneAndDelete(t *testing.T) {
	h := newHarness(t, lines("2",
		"1", "Report", "quarterly", "Высокий", "10-04-2024",
		"3", "1",
		"2",
		"5", "7",
		"5", "1",
		"2",
		"8", "6"))
	out := h.run(t)

	assert.Contains(t, out, "Задача отмечена как выполненная!")
	assert.Contains(t, out, "1: Report | Статус: Выполнена | Приоритет: Высокий | Срок: 10-04-2024")
	assert.Contains(t, out, "Задача не найдена.")
	assert.Contains(t, out, "Задача успешно удалена!")
	assert.Contains(t, out, "Нет доступных задач.")
}

func TestContactSearch(t *testing.T) {
	h := newHarness(t, lines("3",
		"1", "Anna", "555-0101", "anna@example.com",
		"1", "Boris", "555-0202", "b@example.com",
		"3", "an",
		"3", "zzz",
		"8", "6"))
	out := h.run(t)

	assert.Contains(t, out, "1: Anna | Телефон: 555-0101 | Email: anna@example.com")
	assert.NotContains(t, out, "2: Boris | Телефон")
	assert.Contains(t, out, "Контакты не найдены.")
}

func TestFinanceReport(t *testing.T) {
	h := newHarness(t, lines("4",
		"1", "100", "Salary", "01-01-2024", "",
		"1", "-40", "Food", "15-01-2024", "",
		"4", "01-01-2024", "31-01-2024",
		"3", "food", "", "",
		"1", "abc",
		"10", "6"))
	out := h.run(t)

	assert.Contains(t, out, "Финансовый отчёт за период с 01-01-2024 по 31-01-2024:")
	assert.Contains(t, out, "Общий доход: 100.00")
	assert.Contains(t, out, "Общие расходы: -40.00")
	assert.Contains(t, out, "Баланс: 60.00")
	assert.Contains(t, out, "2: -40.0 | Категория: Food | Дата: 15-01-2024 | Описание: ")
	assert.NotContains(t, out, "1: 100.0 | Категория")
	assert.Contains(t, out, "Ошибка: некорректное число")
}

func TestCalculator(t *testing.T) {
	h := newHarness(t, lines("5", "1", "10 / 4", "1", "2 + 3 * 4", "1", "1/0", "1", "2 + x", "1", "1 +", "2", "6"))
	out := h.run(t)

	assert.Contains(t, out, ": 2.5\n")
	assert.Contains(t, out, ": 14\n")
	assert.Contains(t, out, "Ошибка деления на ноль!")
	assert.Contains(t, out, "Вы ввели запрещенный символ")
	assert.Contains(t, out, "Ошибка при вычислении:")
}

func TestExportThenImportRemembersPath(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()
	_, err := h.deps.Notes.Add(ctx, "a", "b")
	require.NoError(t, err)

	exported := filepath.Join(h.dir, "notes_export.csv")
	h.deps.IO = NewConsole(strings.NewReader(lines("1", "6", "", "7", exported, "7", "", "8", "6")), h.out)
	out := h.run(t)

	assert.Contains(t, out, "Заметки успешно экспортированы в "+exported+"! Записей: 1")
	assert.Contains(t, out, "(пусто = "+exported+")")
	all, err := h.deps.Notes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	last, err := h.deps.State.LastImport("notes")
	require.NoError(t, err)
	assert.Equal(t, exported, last)
}

func TestImportMissingFileIsReported(t *testing.T) {
	h := newHarness(t, lines("1", "7", "/does/not/exist.csv", "8", "6"))
	out := h.run(t)
	assert.Contains(t, out, "Ошибка: import /does/not/exist.csv")
}

func TestCorruptCollectionIsReported(t *testing.T) {
	h := newHarness(t, lines("1", "2", "8", "6"))
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, "notes.json"), []byte("{bad"), 0o644))
	out := h.run(t)

	assert.Contains(t, out, "Ошибка: Неверный формат файла "+filepath.Join(h.dir, "notes.json")+".")
	assert.Contains(t, out, "Нет доступных заметок.")
}

func TestLoadMenu(t *testing.T) {
	m, err := Load("")
	require.NoError(t, err)
	require.Len(t, m.Items, 6)
	assert.Equal(t, "exit", m.Items[5].Key)

	dir := t.TempDir()
	custom := filepath.Join(dir, "menu.json")
	require.NoError(t, os.WriteFile(custom, []byte(`{"title":"t","items":[{"key":"list_notes","field":"Заметки"},{"key":"exit","field":"Выход"}]}`), 0o644))
	m, err = Load(custom)
	require.NoError(t, err)
	assert.Len(t, m.Items, 2)

	unknown := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"items":[{"key":"launch_rocket","field":"?"}]}`), 0o644))
	_, err = Load(unknown)
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestWithTimingLogsRunID(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	cmd := WithTiming(Command{Key: "list_notes", Name: "Заметки", Run: func(context.Context) error { return nil }})
	require.NoError(t, cmd.Run(context.Background()))
	assert.Contains(t, buf.String(), "run_id=")
	assert.Contains(t, buf.String(), "key=list_notes")
}
