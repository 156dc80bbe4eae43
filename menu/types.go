package menu

import (
	"organizer/facade"
	"organizer/state"
)

type Item struct {
	Key   string `json:"key"`             // action key
	Field string `json:"field"`           // text shown in the list
	Title string `json:"title,omitempty"` // submenu title
	Items []Item `json:"items,omitempty"`
}

type Menu struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

type Deps struct {
	Notes    facade.NoteFacade
	Tasks    facade.TaskFacade
	Contacts facade.ContactFacade
	Finance  facade.FinanceFacade
	State    state.Store
	IO       *Console
}
