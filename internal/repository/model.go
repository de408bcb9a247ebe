package repository

import "gorm.io/gorm"

// DeviceToken maps one recipient of an application to one registered push
// device. A recipient may hold any number of devices.
type DeviceToken struct {
	gorm.Model

	Application string
	Recipient   string
	Token       string
}
