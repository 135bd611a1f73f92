package courier

import "time"

type CourierDB struct {
	ID        int64
	Name      string
	Phone     string
	Active    bool
	Region    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
