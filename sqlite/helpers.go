package sqlite

import (
	"strings"

	"github.com/fwojciec/sifter"
)

// appendSourceFilter appends WHERE conditions for a source filter.
// The query must already contain "WHERE 1=1".
func appendSourceFilter(query *strings.Builder, args *[]any, filter sifter.SourceFilter) {
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		*args = append(*args, *filter.Category)
	}
	if filter.SubjectID != nil {
		query.WriteString(" AND member_id = ?")
		*args = append(*args, *filter.SubjectID)
	}
}

// appendDigestFilter appends WHERE conditions for a digest filter.
// The query must already contain "WHERE 1=1".
func appendDigestFilter(query *strings.Builder, args *[]any, filter sifter.DigestFilter) {
	if filter.SubjectID != nil {
		query.WriteString(" AND member_id = ?")
		*args = append(*args, *filter.SubjectID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		*args = append(*args, *filter.Category)
	}
}
