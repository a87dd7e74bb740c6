package models

import "strings"

// MinDonationAmount is the smallest accepted donation, in rupees.
const MinDonationAmount = 10

// DonationCurrency is the currency every donation is taken in.
const DonationCurrency = "inr"

// PresetAmounts are the quick-pick amounts offered on the donation form.
var PresetAmounts = []int64{101, 501, 1111, 2501}

// DonationRequest is the payload posted by the donation form.
type DonationRequest struct {
	Amount    int64  `json:"amount" binding:"gte=10"`
	Category  string `json:"category"`
	Anonymous bool   `json:"anonymous"`
	Name      string `json:"name,omitempty" binding:"required_unless=Anonymous true"`
	Email     string `json:"email,omitempty" binding:"required_unless=Anonymous true,omitempty,email"`
	Message   string `json:"message,omitempty"`
}

// DonationConfirmation is what the donor (and the trust) is notified with.
type DonationConfirmation struct {
	ReceiptID string `json:"receiptId"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Amount    int64  `json:"amount"`
	Category  string `json:"category"`
	Message   string `json:"message,omitempty"`
}

// Cause is a public donation category shown on the home page.
type Cause struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
}

// DonationCategory is a cause managed from the admin donations screen.
type DonationCategory struct {
	ID            string `json:"id" bson:"id"`
	Title         string `json:"title" bson:"title"`
	Description   string `json:"description" bson:"description"`
	Image         string `json:"image,omitempty" bson:"image,omitempty"`
	TargetAmount  int64  `json:"targetAmount" bson:"targetAmount"`
	CurrentAmount int64  `json:"currentAmount" bson:"currentAmount"`
}

// DonationCategoryInput is the admin form for creating or editing a category.
type DonationCategoryInput struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"min=10"`
	Image         string `json:"image,omitempty"`
	TargetAmount  int64  `json:"targetAmount" binding:"gt=0"`
	CurrentAmount int64  `json:"currentAmount" binding:"gte=0"`
}

// DonationCategoryMessages are the form messages per JSON field.
var DonationCategoryMessages = map[string]string{
	"title":         "Title is required",
	"description":   "Description must be at least 10 characters",
	"targetAmount":  "Target amount must be greater than 0",
	"currentAmount": "Current amount cannot be negative",
}

// Normalized trims the text fields.
func (in DonationCategoryInput) Normalized() DonationCategoryInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)
	return in
}

// ToCategory builds the stored category with the given id.
func (in DonationCategoryInput) ToCategory(id string) DonationCategory {
	in = in.Normalized()
	return DonationCategory{
		ID:            id,
		Title:         in.Title,
		Description:   in.Description,
		Image:         in.Image,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
	}
}
