package models

// PromoterEvent is an event a promoter sells guest list spots for
type PromoterEvent struct {
	ID          uint   `json:"id" example:"3"`
	EventID     uint   `json:"eventId" example:"5"`
	Title       string `json:"title" example:"Noite do Samba"`
	Date        string `json:"date" example:"2026-11-20"`
	GuestListID uint   `json:"guestListId" example:"17"`
}

// Guest is a person on a promoter's guest list
type Guest struct {
	ID          uint   `json:"id,omitempty" example:"250"`
	GuestListID uint   `json:"guestListId" example:"17"`
	Name        string `json:"name" example:"Ana"`
	WhatsApp    string `json:"whatsapp,omitempty" example:"11999990000"`
	CheckedIn   bool   `json:"checkedIn"`
}

// GuestListSummary is the promoter dashboard headline
type GuestListSummary struct {
	GuestListID  uint `json:"guestListId" example:"17"`
	Total        int  `json:"total" example:"40"`
	WithWhatsApp int  `json:"withWhatsapp" example:"31"`
	CheckedIn    int  `json:"checkedIn" example:"12"`
}
