package constant

const (
	// Sanitization limits applied on both create and update.
	MaxTitleLength       = 500
	MaxDescriptionLength = 5000

	// ListNotes result cap, bounds response size.
	MaxListNotes = 1000
)

const (
	EventNoteCreated = "NOTE_CREATED"
	EventNoteUpdated = "NOTE_UPDATED"
	EventNoteDeleted = "NOTE_DELETED"
)
