package models

import "time"

// GalleryImage is an entry of the shared image library
type GalleryImage struct {
	ID         string    `json:"id" example:"f3a1"`
	Filename   string    `json:"filename" example:"caipirinha.jpg"`
	URL        string    `json:"url" example:"https://storage.example.com/cardapio/caipirinha.jpg"`
	Folder     string    `json:"folder,omitempty" example:"cardapio"`
	SizeBytes  int64     `json:"size,omitempty"`
	UploadedAt time.Time `json:"uploadedAt,omitempty"`
}

// TrashEntry is a soft deleted record that can be restored
type TrashEntry struct {
	ID         uint      `json:"id" example:"44"`
	EntityType string    `json:"type" example:"item"`
	EntityID   uint      `json:"entityId" example:"101"`
	Name       string    `json:"name" example:"Caipirinha"`
	BarID      uint      `json:"barId,omitempty"`
	DeletedAt  time.Time `json:"deletedAt"`
}
