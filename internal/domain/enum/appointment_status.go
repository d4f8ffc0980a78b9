package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus int

const (
	AppointmentStatusScheduled AppointmentStatus = 0
	AppointmentStatusConfirmed AppointmentStatus = 1
	AppointmentStatusCompleted AppointmentStatus = 2
	AppointmentStatusCancelled AppointmentStatus = 3
	AppointmentStatusNoShow    AppointmentStatus = 4
)

func (s AppointmentStatus) String() string {
	names := [...]string{"Scheduled", "Confirmed", "Completed", "Cancelled", "NoShow"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Scheduled"
	}
	return names[s]
}

// ParseAppointmentStatus maps a display name back to its status; unknown
// names default to Scheduled.
func ParseAppointmentStatus(s string) AppointmentStatus {
	switch s {
	case "Confirmed":
		return AppointmentStatusConfirmed
	case "Completed":
		return AppointmentStatusCompleted
	case "Cancelled":
		return AppointmentStatusCancelled
	case "NoShow":
		return AppointmentStatusNoShow
	default:
		return AppointmentStatusScheduled
	}
}

func (s AppointmentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *AppointmentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = AppointmentStatus(i)
		return nil
	}
	switch str {
	case "Confirmed":
		*s = AppointmentStatusConfirmed
	case "Completed":
		*s = AppointmentStatusCompleted
	case "Cancelled":
		*s = AppointmentStatusCancelled
	case "NoShow":
		*s = AppointmentStatusNoShow
	default:
		*s = AppointmentStatusScheduled
	}
	return nil
}

func (s AppointmentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *AppointmentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AppointmentStatusScheduled
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = AppointmentStatus(v)
	case int:
		*s = AppointmentStatus(v)
	}
	return nil
}
