package types

type Label struct {
	ID   int32  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name;size:20;not null;uniqueIndex" json:"name"`
}

func (Label) TableName() string { return "labels" }

type CreateLabel struct {
	Name string `json:"name" binding:"required,min=1,max=20"`
}
