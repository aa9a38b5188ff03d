package portfolio

import "github.com/mdalaminab17/portfolio/views"

// ContactMessage is a contact form submission stored in SQLite.
type ContactMessage = views.ContactMessage

// Image is an uploaded artwork file tracked in SQLite.
type Image = views.Image
