package menu

import "context"

const (
	keyBack = "back"
	keyExit = "exit"
)

type action func(ctx context.Context, d *Deps) error

var actions = map[string]action{
	"add_note":     actionAddNote,
	"list_notes":   actionListNotes,
	"note_details": actionNoteDetails,
	"edit_note":    actionEditNote,
	"delete_note":  actionDeleteNote,
	"export_notes": actionExportNotes,
	"import_notes": actionImportNotes,

	"add_task":     actionAddTask,
	"list_tasks":   actionListTasks,
	"done_task":    actionMarkTaskDone,
	"edit_task":    actionEditTask,
	"delete_task":  actionDeleteTask,
	"export_tasks": actionExportTasks,
	"import_tasks": actionImportTasks,

	"add_contact":     actionAddContact,
	"list_contacts":   actionListContacts,
	"search_contacts": actionSearchContacts,
	"edit_contact":    actionEditContact,
	"delete_contact":  actionDeleteContact,
	"export_contacts": actionExportContacts,
	"import_contacts": actionImportContacts,

	"add_record":        actionAddRecord,
	"list_records":      actionListRecords,
	"filter_records":    actionFilterRecords,
	"finance_report":    actionFinanceReport,
	"finance_breakdown": actionFinanceBreakdown,
	"edit_record":       actionEditRecord,
	"delete_record":     actionDeleteRecord,
	"export_finance":    actionExportFinance,
	"import_finance":    actionImportFinance,

	"calc_eval": actionCalc,
}

// BuildCommands wraps every action reachable from m in a timed command,
// named after its menu entry.
func BuildCommands(m Menu, d *Deps) map[string]Command {
	out := map[string]Command{}
	var walk func(items []Item)
	walk = func(items []Item) {
		for _, it := range items {
			if len(it.Items) > 0 {
				walk(it.Items)
				continue
			}
			if _, ok := actions[it.Key]; !ok {
				continue
			}
			key := it.Key
			out[key] = WithTiming(Command{
				Key:  key,
				Name: it.Field,
				Run:  func(ctx context.Context) error { return Execute(ctx, key, d) },
			})
		}
	}
	walk(m.Items)
	return out
}
