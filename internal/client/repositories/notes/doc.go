// Package notes adapts the row store's notes table for the workspace.
//
// Every failure, whatever its cause, is reported as common.ErrNotApplied
// wrapping the underlying error; callers keep their local state untouched
// when they see it.
//
// Typical Usage
//
//	repo := notes.NewRemoteRepository(api)
//	n, err := repo.Create(ctx, "", "")
//	n, err = repo.Update(ctx, n.ID, "Draft", "Hello")
//	err = repo.Delete(ctx, n.ID)
package notes
