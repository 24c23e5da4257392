package types

// Todo is the scalar row persisted in the todos table. Labels live in
// their own table and are attached through TodoLabel.
type Todo struct {
	ID        int32  `gorm:"primaryKey" json:"id"`
	Text      string `gorm:"column:text;size:100;not null" json:"text"`
	Completed bool   `gorm:"column:completed;not null;default:false" json:"completed"`
}

func (Todo) TableName() string { return "todos" }

// TodoLabel is the association row between a todo and a label.
type TodoLabel struct {
	TodoID  int32 `gorm:"column:todo_id;primaryKey" json:"todo_id"`
	LabelID int32 `gorm:"column:label_id;primaryKey" json:"label_id"`
}

func (TodoLabel) TableName() string { return "todo_labels" }

// TodoEntity is a todo hydrated with its labels.
type TodoEntity struct {
	ID        int32   `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Labels    []Label `json:"labels"`
}

type CreateTodo struct {
	Text     string  `json:"text" binding:"required,min=1,max=100"`
	LabelIDs []int32 `json:"label_ids"`
}

// UpdateTodo overwrites each present field and preserves each absent
// one. A non-nil empty LabelIDs clears every label; a nil LabelIDs
// leaves the current set untouched.
type UpdateTodo struct {
	Text      *string  `json:"text" binding:"omitempty,min=1,max=100"`
	Completed *bool    `json:"completed"`
	LabelIDs  *[]int32 `json:"label_ids"`
}
