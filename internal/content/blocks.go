package content

import (
	"strings"

	"github.com/CortexBlog/blog-service/internal/model"
)

// BlockContentToPlainText flattens a rich-text body: text blocks keep their
// span text, every other node type is dropped, and blocks are joined by a
// single space.
func BlockContentToPlainText(blocks []model.Block) string {
	var parts []string
	for _, block := range blocks {
		if block.Type != model.BlockTypeBlock {
			continue
		}
		var b strings.Builder
		for _, child := range block.Children {
			b.WriteString(child.Text)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}
