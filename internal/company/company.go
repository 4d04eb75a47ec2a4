package company

// Company is a business that invoices are issued against. Code is the
// primary key and never changes after creation.
type Company struct {
	Code        string
	Name        string
	Description string
}
