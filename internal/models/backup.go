package models

import "time"

// Backup is the aggregate export/restore document. Restore replaces each
// collection wholesale, so every collection the system writes must appear
// here and every model must round-trip through JSON without loss.
type Backup struct {
	BackupDate    time.Time      `json:"backupDate"`
	Orders        []Order        `json:"orders"`
	Clients       []Client       `json:"clients"`
	Parts         []Part         `json:"parts"`
	Suppliers     []Supplier     `json:"suppliers"`
	Branches      []Branch       `json:"branches"`
	Users         []User         `json:"users"`
	Notifications []Notification `json:"notifications"`
}
