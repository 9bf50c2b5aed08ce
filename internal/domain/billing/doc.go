// Package billing contains the invoicing domain: clients, invoices and
// their line items, together with the repository contracts the
// persistence layer implements.
package billing
