package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

const (
	VendorStatusNone     = "none"
	VendorStatusPending  = "pending"
	VendorStatusApproved = "approved"
	VendorStatusRejected = "rejected"
)

type User struct {
	gorm.Model
	Name         string         `json:"name"`
	Email        string         `json:"email" gorm:"uniqueIndex"`
	Password     string         `json:"password"`
	Role         string         `json:"role" gorm:"type:varchar(20);default:customer;index"` // customer, vendor, admin
	IsBlocked    bool           `json:"isBlocked"`
	VendorStatus string         `json:"vendorStatus" gorm:"type:varchar(20);default:none"` // none, pending, approved, rejected
	Wishlist     datatypes.JSON `json:"wishlist"`
	Hotels       []Hotel        `json:"hotels,omitempty" gorm:"foreignKey:VendorID;references:ID"`
}

// Custom JSON marshaling: never serialize the password hash, render the
// wishlist JSON column as a plain id array.
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		Password string `json:"password,omitempty"`
		Wishlist []uint `json:"wishlist"`
		*Alias
	}{
		Wishlist: []uint{},
		Alias:    (*Alias)(u),
	}

	if u.Wishlist != nil {
		var wishlist []uint
		if err := json.Unmarshal(u.Wishlist, &wishlist); err == nil {
			aux.Wishlist = wishlist
		}
	}

	return json.Marshal(aux)
}

// WishlistIDs decodes the wishlist column. A nil or malformed column reads
// as an empty set.
func (u *User) WishlistIDs() []uint {
	if u.Wishlist == nil {
		return []uint{}
	}
	var ids []uint
	if err := json.Unmarshal(u.Wishlist, &ids); err != nil {
		return []uint{}
	}
	return ids
}

func (u *User) SetWishlistIDs(ids []uint) {
	if ids == nil {
		ids = []uint{}
	}
	raw, _ := json.Marshal(ids)
	u.Wishlist = raw
}
