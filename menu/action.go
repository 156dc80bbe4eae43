package menu

import "context"

func actionAddNote(ctx context.Context, d *Deps) error {
	title, err := d.IO.ReadLine("Введите заголовок заметки: ")
	if err != nil {
		return err
	}
	content, err := d.IO.ReadLine("Введите содержимое заметки: ")
	if err != nil {
		return err
	}
	if _, err := d.Notes.Add(ctx, title, content); err != nil {
		return err
	}
	d.IO.Println("Заметка успешно добавлена!")
	return nil
}

func actionListNotes(ctx context.Context, d *Deps) error {
	notes, err := d.Notes.List(ctx)
	if err != nil {
		return err
	}
	printAll(d.IO, notes, "Нет доступных заметок.", PrintNote)
	return nil
}

func actionNoteDetails(ctx context.Context, d *Deps) error {
	id, err := d.IO.ReadInt("Введите ID заметки для просмотра: ")
	if err != nil {
		return err
	}
	n, err := d.Notes.Get(ctx, id)
	if err != nil {
		return notFound(d.IO, err, "Заметка не найдена.")
	}
	d.IO.Printf("Заголовок: %s\nСодержимое:\n%s\nДата и время: %s\n", n.Title, n.Content, n.Timestamp)
	return nil
}

func actionEditNote(ctx context.Context, d *Deps) error {
	id, err := d.IO.ReadInt("Введите ID заметки для редактирования: ")
	if err != nil {
		return err
	}
	title, err := d.IO.ReadLine("Введите новый заголовок заметки: ")
	if err != nil {
		return err
	}
	content, err := d.IO.ReadLine("Введите новое содержимое заметки: ")
	if err != nil {
		return err
	}
	if _, err := d.Notes.Edit(ctx, id, title, content); err != nil {
		return notFound(d.IO, err, "Заметка не найдена.")
	}
	d.IO.Println("Заметка успешно отредактирована!")
	return nil
}

func actionDeleteNote(ctx context.Context, d *Deps) error {
	id, err := d.IO.ReadInt("Введите ID заметки для удаления: ")
	if err != nil {
		return err
	}
	ok, err := d.Notes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		d.IO.Println("Заметка не найдена.")
		return nil
	}
	d.IO.Println("Заметка успешно удалена!")
	return nil
}

func actionExportNotes(ctx context.Context, d *Deps) error {
	return exportCollection(ctx, d, d.Notes.Manager, "Заметки успешно экспортированы в")
}

func actionImportNotes(ctx context.Context, d *Deps) error {
	return importCollection(ctx, d, d.Notes.Manager, "Заметки успешно импортированы.")
}

func readTaskFields(c *Console, edit bool) (title, description, priority, due string, err error) {
	prefix := ""
	if edit {
		prefix = "новое "
	}
	if title, err = c.ReadLine("Введите " + prefix + "краткое описание задачи: "); err != nil {
		return
	}
	if description, err = c.ReadLine("Введите " + prefix + "подробное описание задачи: "); err != nil {
		return
	}
	if edit {
		priority, err = c.ReadLine("Выберите новый приоритет (Высокий/Средний/Низкий): ")
	} else {
		priority, err = c.ReadLine("Выберите приоритет (Высокий/Средний/Низкий): ")
	}
	if err != nil {
		return
	}
	if edit {
		due, err = c.ReadLine("Введите новый срок выполнения (ДД-ММ-ГГГГ): ")
	} else {
		due, err = c.ReadLine("Введите срок выполнения (ДД-ММ-ГГГГ): ")
	}
	return
}

func actionAddTask(ctx context.Context, d *Deps) error {
	title, description, priority, due, err := readTaskFields(d.IO, false)
	if err != nil {
		return err
	}
	if _, err := d.Tasks.Add(ctx, title, description, priority, due); err != nil {
		return err
	}
	d.IO.Println("Задача успешно добавлена!")
	return nil
}

func actionListTasks(ctx context.Context, d *Deps) error {
	tasks, err := d.Tasks.List(ctx)
	if err != nil {
		return err
	}
	printAll(d.IO, tasks, "Нет доступных задач.", PrintTask)
	return nil
}

func actionMarkTaskDone(ctx context.Context, d *Deps) error {
	id, err := d.IO.ReadInt("Введите ID задачи для отметки как выполненной: ")
	if err != nil {
		return err
	}
	if _, err := d.Tasks.MarkDone(ctx, id); err != nil {
		return notFound(d.IO, err, "Задача не найдена.")
	}
	d.IO.Println("Задача отмечена как выполненная!")
	return nil
}

func actionEditTask(ctx context.Context, d *Deps) error {
	id, err := d.IO.ReadInt("Введите ID задачи для редактирования: ")
	if err != nil {
		return err
	}
	title, description, priority, due, err := readTaskFields(d.IO, true)
	if err != nil {
		return err
	}
	if _, err := d.Tasks.Edit(ctx, id, title, description, priority, due); err != nil {
		return notFound(d.IO, err, "Задача не найдена.")
	}
	d.IO.Println("Задача успешно отредактирована!")
	return nil
}

func actionDeleteTask(ctx context.Context, d *Deps) error {
	id, err := d.IO.ReadInt("Введите ID задачи для удаления: ")
	if err != nil {
		return err
	}
	ok, err := d.Tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		d.IO.Println("Задача не найдена.")
		return nil
	}
	d.IO.Println("Задача успешно удалена!")
	return nil
}

func actionExportTasks(ctx context.Context, d *Deps) error {
	return exportCollection(ctx, d, d.Tasks.Manager, "Задачи успешно экспортированы в")
}

func actionImportTasks(ctx context.Context, d *Deps) error {
	return importCollection(ctx, d, d.Tasks.Manager, "Задачи успешно импортированы.")
}

func readContactFields(c *Console, edit bool) (name, phone, email string, err error) {
	prompts := [3]string{"Введите имя контакта: ", "Введите номер телефона: ", "Введите адрес электронной почты: "}
	if edit {
		prompts = [3]string{"Введите новое имя контакта: ", "Введите новый номер телефона: ", "Введите новый адрес электронной почты: "}
	}
	if name, err = c.ReadLine(prompts[0]); err != nil {
		return
	}
	if phone, err = c.ReadLine(prompts[1]); err != nil {
		return
	}
	email, err = c.ReadLine(prompts[2])
	return
}

func actionAddContact(ctx context.Context, d *Deps) error {
	name, phone, email, err := readContactFields(d.IO, false)
	if err != nil {
		return err
	}
	if _, err := d.Contacts.Add(ctx, name, phone, email); err != nil {
		return err
	}
	d.IO.Println("Контакт успешно добавлен!")
	return nil
}

func actionListContacts(ctx context.Context, d *Deps) error {
	contacts, err := d.Contacts.List(ctx)
	if err != nil {
		return err
	}
	printAll(d.IO, contacts, "Нет доступных контактов.", PrintContact)
	return nil
}

func actionSearchContacts(ctx context.Context, d *Deps) error {
	query, err := d.IO.ReadLine("Введите имя или номер телефона для поиска: ")
	if err != nil {
		return err
	}
	found, err := d.Contacts.Search(ctx, query)
	if err != nil {
		return err
	}
	printAll(d.IO, found, "Контакты не найдены.", PrintContact)
	return nil
}

func actionEditContact(ctx context.Context, d *Deps) error {
	id, err := d.IO.ReadInt("Введите ID контакта для редактирования: ")
	if err != nil {
		return err
	}
	name, phone, email, err := readContactFields(d.IO, true)
	if err != nil {
		return err
	}
	if _, err := d.Contacts.Edit(ctx, id, name, phone, email); err != nil {
		return notFound(d.IO, err, "Контакт не найден.")
	}
	d.IO.Println("Контакт успешно отредактирован!")
	return nil
}

func actionDeleteContact(ctx context.Context, d *Deps) error {
	id, err := d.IO.ReadInt("Введите ID контакта для удаления: ")
	if err != nil {
		return err
	}
	ok, err := d.Contacts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		d.IO.Println("Контакт не найден.")
		return nil
	}
	d.IO.Println("Контакт успешно удалён!")
	return nil
}

func actionExportContacts(ctx context.Context, d *Deps) error {
	return exportCollection(ctx, d, d.Contacts.Manager, "Контакты успешно экспортированы в")
}

func actionImportContacts(ctx context.Context, d *Deps) error {
	return importCollection(ctx, d, d.Contacts.Manager, "Контакты успешно импортированы.")
}
