package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/plaintheory/internal/client/workspace"
)

var errNoSelection = errors.New("no note selected, use 'open <n>'")

// pick resolves a 1-based index shown by list/docs.
func pick(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > n {
		return 0, fmt.Errorf("expected a number between 1 and %d", n)
	}
	return i - 1, nil
}

func (a *App) confirm(question string) bool {
	answer, err := getSimpleText(a.reader, question+" (y/N)", a.out)
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// List prints the visible notes.
func (a *App) List(context.Context) error {
	selected := ""
	if n, ok := a.vm.Selected(); ok {
		selected = n.ID
	}
	if q := a.vm.Search(); q != "" {
		a.println(dimStyle.Render("search: " + q))
	}
	a.println(renderNoteList(a.vm.Visible(), len(a.vm.Notes()), selected, a.vm.Search()))
	return nil
}

func (a *App) New(ctx context.Context) error {
	if _, err := a.vm.CreateNote(ctx); err != nil {
		return err
	}
	return a.Show(ctx)
}

func (a *App) Open(ctx context.Context, arg string) error {
	visible := a.vm.Visible()
	i, err := pick(arg, len(visible))
	if err != nil {
		return err
	}
	if err := a.vm.Select(ctx, visible[i].ID); err != nil {
		return err
	}
	return a.Show(ctx)
}

// Show prints the selected note (or its draft while editing) and its
// documents.
func (a *App) Show(context.Context) error {
	n, ok := a.vm.Selected()
	if !ok {
		return errNoSelection
	}
	title, content := a.vm.Draft()
	a.println(renderNote(n, a.vm.Editing(), title, content))
	a.println(renderDocuments(a.vm.Documents()))
	return nil
}

func (a *App) Edit(ctx context.Context) error {
	if err := a.vm.BeginEdit(); err != nil {
		if errors.Is(err, workspace.ErrNoSelection) {
			return errNoSelection
		}
		return err
	}
	return a.Show(ctx)
}

func (a *App) Title(context.Context) error {
	if !a.vm.Editing() {
		return errors.New("not editing, use 'edit' first")
	}
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	return a.vm.SetDraftTitle(title)
}

func (a *App) Content(context.Context) error {
	if !a.vm.Editing() {
		return errors.New("not editing, use 'edit' first")
	}
	content, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	return a.vm.SetDraftContent(content)
}

func (a *App) Save(ctx context.Context) error {
	if err := a.vm.Save(ctx); err != nil {
		return err
	}
	a.println(okStyle.Render("Saved"))
	return a.Show(ctx)
}

func (a *App) Cancel(ctx context.Context) error {
	a.vm.Cancel()
	if _, ok := a.vm.Selected(); !ok {
		return nil
	}
	return a.Show(ctx)
}

// Delete removes the nth visible note, or the selected one without an
// argument, after confirmation.
func (a *App) Delete(ctx context.Context, arg string) error {
	var id, title string
	if arg == "" {
		n, ok := a.vm.Selected()
		if !ok {
			return errNoSelection
		}
		id, title = n.ID, n.Title
	} else {
		visible := a.vm.Visible()
		i, err := pick(arg, len(visible))
		if err != nil {
			return err
		}
		id, title = visible[i].ID, visible[i].Title
	}

	if !a.confirm(fmt.Sprintf("Are you sure you want to delete %q?", title)) {
		return nil
	}
	if err := a.vm.DeleteNote(ctx, id); err != nil {
		return err
	}
	a.println(okStyle.Render("Deleted"))
	return nil
}

func (a *App) Search(ctx context.Context, q string) error {
	a.vm.SetSearch(q)
	return a.List(ctx)
}

// Status reports the workspace's pending error, if any, and clears it.
func (a *App) Status(context.Context) error {
	if msg := a.vm.LastError(); msg != "" {
		a.println(errorStyle.Render(msg))
		a.vm.ClearError()
		return nil
	}
	a.println(okStyle.Render("No errors"))
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.vm.Load(ctx); err != nil {
		return err
	}
	if err := a.vm.RefreshDocuments(ctx); err != nil {
		return err
	}
	return a.List(ctx)
}
