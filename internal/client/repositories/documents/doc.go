// Package documents adapts the row store's documents table and pairs it
// with the blob store for deletion.
//
// Delete removes the blob first and the metadata row second. A blob failure
// aborts before the row is touched; a row failure after a successful blob
// removal leaves the row visible until the next refetch. There is no lock
// across the pair.
package documents
