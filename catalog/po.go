package catalog

import (
	"fmt"
	"os"

	"github.com/chai2010/gettext-go/po"
)

// LoadPO reads a GNU PO file.
func LoadPO(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParsePO(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// ParsePO converts PO file content into a catalog. The header entry (empty
// msgid) only fills Language and PluralForms. Duplicate definitions are kept
// so that they surface when the catalog is written out.
func ParsePO(data []byte) (*Catalog, error) {
	file, err := po.Load(data)
	if err != nil {
		return nil, err
	}
	c := New()
	c.Language = file.MimeHeader.Language
	c.PluralForms = file.MimeHeader.PluralForms
	for _, msg := range file.Messages {
		if msg.MsgId == "" {
			continue
		}
		c.Add(entryFromPO(msg), MergeAppend)
	}
	return c, nil
}

func entryFromPO(msg po.Message) Entry {
	e := Entry{
		SourceString: msg.MsgId,
		PluralSource: msg.MsgIdPlural,
		Context:      msg.MsgContext,
		Line:         msg.Comment.StartLine,
	}
	if msg.MsgIdPlural != "" && len(msg.MsgStrPlural) > 0 {
		e.Translations = append([]string(nil), msg.MsgStrPlural...)
	} else {
		e.Translations = []string{msg.MsgStr}
	}
	for _, flag := range msg.Comment.Flags {
		if flag == "fuzzy" {
			e.Fuzzy = true
		}
	}
	for i, file := range msg.Comment.ReferenceFile {
		if i < len(msg.Comment.ReferenceLine) && msg.Comment.ReferenceLine[i] > 0 {
			file = fmt.Sprintf("%s:%d", file, msg.Comment.ReferenceLine[i])
		}
		e.References = append(e.References, file)
	}
	return e
}
