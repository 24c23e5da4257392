package todo

import (
	"fmt"

	"github.com/yungbote/todolist-backend/internal/types"
)

// TodoRow is one flat result row of the left outer join between todos
// and labels. A todo with N labels spans N rows; a todo without labels
// appears once with a nil label pair.
type TodoRow struct {
	ID        int32   `gorm:"column:id"`
	Text      string  `gorm:"column:text"`
	Completed bool    `gorm:"column:completed"`
	LabelID   *int32  `gorm:"column:label_id"`
	LabelName *string `gorm:"column:label_name"`
}

// FoldRows collapses flat join rows into hydrated entities, one per
// distinct todo id, in first-occurrence order. Rows for the same id
// need not be contiguous. Repeated label rows are kept as-is.
//
// A row carrying a label id without a name means the join query itself
// is broken; that is a programming error, not input to recover from.
func FoldRows(rows []TodoRow) []*types.TodoEntity {
	entities := make([]*types.TodoEntity, 0, len(rows))
	index := make(map[int32]int, len(rows))

	for _, row := range rows {
		i, seen := index[row.ID]
		if !seen {
			entities = append(entities, &types.TodoEntity{
				ID:        row.ID,
				Text:      row.Text,
				Completed: row.Completed,
				Labels:    []types.Label{},
			})
			i = len(entities) - 1
			index[row.ID] = i
		}
		if row.LabelID == nil {
			continue
		}
		if row.LabelName == nil {
			panic(fmt.Sprintf("todo row %d carries label id %d without a name", row.ID, *row.LabelID))
		}
		entities[i].Labels = append(entities[i].Labels, types.Label{
			ID:   *row.LabelID,
			Name: *row.LabelName,
		})
	}
	return entities
}
