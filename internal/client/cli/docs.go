package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/filex"
)

const downloadsDir = "downloads"

func (a *App) Docs(context.Context) error {
	if _, ok := a.vm.Selected(); !ok {
		return errNoSelection
	}
	a.println(renderDocuments(a.vm.Documents()))
	return nil
}

// Upload attaches the file at path to the selected note.
func (a *App) Upload(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("usage: upload <path>")
	}
	if _, ok := a.vm.Selected(); !ok {
		return errNoSelection
	}

	lf, err := filex.Stat(path)
	if err != nil {
		return err
	}
	f, err := lf.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := a.vm.Upload(ctx, models.File{Name: lf.Name, Size: lf.Size, Content: f})
	if err != nil {
		return err
	}
	a.println(okStyle.Render(fmt.Sprintf("Uploaded %s (%s)", doc.FileName, FormatSize(doc.FileSize))))
	return nil
}

func (a *App) document(arg string) (models.Document, error) {
	if _, ok := a.vm.Selected(); !ok {
		return models.Document{}, errNoSelection
	}
	docs := a.vm.Documents()
	i, err := pick(arg, len(docs))
	if err != nil {
		return models.Document{}, err
	}
	return docs[i], nil
}

func (a *App) RemoveDoc(ctx context.Context, arg string) error {
	doc, err := a.document(arg)
	if err != nil {
		return err
	}
	if !a.confirm(fmt.Sprintf("Are you sure you want to delete %q?", doc.FileName)) {
		return nil
	}
	if err := a.vm.DeleteDocument(ctx, doc); err != nil {
		return err
	}
	a.println(okStyle.Render("Deleted " + doc.FileName))
	return nil
}

// Download saves the nth document to path. A directory path keeps the
// original file name; no path means ./downloads.
func (a *App) Download(ctx context.Context, arg, path string) error {
	doc, err := a.document(arg)
	if err != nil {
		return err
	}
	if path == "" {
		dir, err := filex.EnsureSubdDir(downloadsDir)
		if err != nil {
			return err
		}
		path = dir
	}
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		path = filepath.Join(path, localName(doc))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	n, err := a.vm.Download(ctx, doc, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	a.println(okStyle.Render(fmt.Sprintf("Saved %s (%s)", path, FormatSize(n))))
	return nil
}

// localName is the file name a document is saved under inside a directory.
// Names that do not reduce to a plain file name fall back to the document id.
func localName(doc models.Document) string {
	name := filepath.Base(doc.FileName)
	switch name {
	case ".", "..", string(filepath.Separator):
		return doc.ID
	}
	return name
}
