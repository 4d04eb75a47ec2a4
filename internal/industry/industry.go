package industry

// Industry is a business sector companies can be tagged with. Code is
// the primary key; Name is the display name (the "industry" column).
type Industry struct {
	Code string
	Name string
}

// Membership pairs an industry name with one associated company name.
// Company is nil for industries with no associations, so they still
// show up in listings.
type Membership struct {
	Industry string
	Company  *string
}
