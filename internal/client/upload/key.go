package upload

import (
	"mime"
	"path"
	"strings"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/google/uuid"
)

// newToken generates the random part of a storage key.
var newToken = uuid.NewString

// ObjectKey builds "ownerID/token.ext" from the original file name. A name
// without an extension yields a key without a suffix.
func ObjectKey(ownerID, fileName string) string {
	return ownerID + "/" + newToken() + extension(fileName)
}

func extension(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	ext := path.Ext(base)
	if ext == "." {
		return ""
	}
	return ext
}

// ContentType picks the declared type, else one inferred from the
// extension, else common.DefaultContentType.
func ContentType(fileName, declared string) string {
	if declared != "" {
		return declared
	}
	if ext := extension(fileName); ext != "" {
		if t := mime.TypeByExtension(strings.ToLower(ext)); t != "" {
			return t
		}
	}
	return common.DefaultContentType
}
