package models

// Record lifecycle status shared by every table. Estimates are append-only;
// "deleting" one flips its status to Deleted, the row itself is never removed.
const (
	StatusActive   = "Active"
	StatusPending  = "Pending"
	StatusInactive = "Inactive"
	StatusDeleted  = "Deleted"
)
