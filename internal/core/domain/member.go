package domain

import "errors"

var ErrEmptyRegistry = errors.New("member registry is empty, cannot assign an id")

// Member is one row of the persisted users.json registry. Field names
// follow the document format existing deployments already hold on disk.
type Member struct {
	Phone       string `json:"phone"`
	ID          int    `json:"u_id"`
	AdminRights int    `json:"admin_rights"`
	EndDate     string `json:"end_date"`
}
