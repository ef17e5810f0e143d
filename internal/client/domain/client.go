package domain

import (
	"errors"
	"time"
)

// Client is a registered customer together with its delivery addresses.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Addresses []Address
	CreatedAt time.Time
}

// Address is a delivery address owned by a client.
type Address struct {
	ID         string
	ClientID   string
	Street     string
	Number     string
	City       string
	State      string
	ZipCode    string
	Complement string
}

var ErrDuplicateEmail = errors.New("e-mail já cadastrado")

var ErrNotFound = errors.New("cliente não encontrado")
