package models

import "time"

// AboutContent is the singleton "about" page block, stored under a fixed
// document ID.
type AboutContent struct {
	Heading      string    `json:"heading" firestore:"heading"`
	Body         string    `json:"body" firestore:"body"`
	ImageURL     string    `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	YearsActive  int       `json:"yearsActive,omitempty" firestore:"yearsActive,omitempty"`
	ClientsCount int       `json:"clientsCount,omitempty" firestore:"clientsCount,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// FooterContent is the singleton footer block.
type FooterContent struct {
	Tagline   string    `json:"tagline,omitempty" firestore:"tagline,omitempty"`
	Email     string    `json:"email,omitempty" firestore:"email,omitempty"`
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address   string    `json:"address,omitempty" firestore:"address,omitempty"`
	Links     []Link    `json:"links,omitempty" firestore:"links,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Link is a labelled URL used in footer link lists.
type Link struct {
	Label string `json:"label" firestore:"label"`
	URL   string `json:"url" firestore:"url"`
}

// Slide is one entry of the home-page slider, ordered by Order ascending.
type Slide struct {
	ID       string `json:"id" firestore:"-"`
	Title    string `json:"title" firestore:"title"`
	Subtitle string `json:"subtitle,omitempty" firestore:"subtitle,omitempty"`
	ImageURL string `json:"imageUrl" firestore:"imageUrl"`
	Order    int    `json:"order" firestore:"order"`
}
