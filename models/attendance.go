package models

import "time"

// AttendanceRecord is one employee-day. When IsAbsent is set the check-in/out
// timestamps are nil and the minute counters are zero.
type AttendanceRecord struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	EmployeeID   uint      `json:"employeeId" gorm:"index;not null"`
	Employee     Employee  `json:"employee" gorm:"foreignKey:EmployeeID"`
	RestaurantID uint      `json:"restaurantId" gorm:"index;not null"`
	Date         time.Time `json:"date" gorm:"not null"`

	CheckIn          *time.Time `json:"checkIn,omitempty"`
	CheckOut         *time.Time `json:"checkOut,omitempty"`
	ExpectedCheckIn  time.Time  `json:"expectedCheckIn"`
	ExpectedCheckOut time.Time  `json:"expectedCheckOut"`

	LateMinutes           int `json:"lateMinutes" gorm:"default:0"`
	EarlyDepartureMinutes int `json:"earlyDepartureMinutes" gorm:"default:0"`

	IsAbsent    bool `json:"isAbsent" gorm:"default:false"`
	IsJustified bool `json:"isJustified" gorm:"default:false"`
	IsHoliday   bool `json:"isHoliday" gorm:"default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Attended reports whether the employee actually showed up that day.
func (r AttendanceRecord) Attended() bool {
	return !r.IsAbsent && r.CheckIn != nil
}
