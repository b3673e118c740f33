package transform

import (
	"fmt"

	"github.com/mikem23/zim-import-tomboy/internal/apperr"
	"github.com/mikem23/zim-import-tomboy/internal/segment"
)

// CheckLineage verifies that every child's parent pointer names the node
// holding it. Newline and list-item nodes carry no parent pointer and are
// skipped, though a list item's own children are still checked.
func CheckLineage(s *segment.Segment) error {
	for _, c := range s.Children() {
		if c.Tag.Kind != segment.KindNewline && c.Tag.Kind != segment.KindListItem {
			if c.Parent() != s {
				return fmt.Errorf("transform: %s child of %s has wrong parent: %w",
					c.Tag.Kind, s.Tag.Kind, apperr.ErrLineage)
			}
		}
		if err := CheckLineage(c); err != nil {
			return err
		}
	}
	return nil
}
