package models

import (
	"testing"

	"dharmachain/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invalidCategoryFields(t *testing.T, in DonationCategoryInput) []string {
	t.Helper()
	in = in.Normalized()
	err := utils.ValidateStruct(in)
	if err == nil {
		return nil
	}
	fields, ok := utils.ValidationFields(in, err, DonationCategoryMessages)
	require.True(t, ok, "unexpected error %v", err)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		assert.Equal(t, DonationCategoryMessages[f.Field], f.Message)
		names = append(names, f.Field)
	}
	return names
}

func TestDonationCategoryInputRules(t *testing.T) {
	tests := []struct {
		name   string
		in     DonationCategoryInput
		fields []string
	}{
		{"valid", DonationCategoryInput{Title: "Medical Care", Description: "Providing medical assistance", TargetAmount: 1}, nil},
		{"everything wrong", DonationCategoryInput{Title: " ", Description: "short", TargetAmount: 0, CurrentAmount: -1},
			[]string{"title", "description", "targetAmount", "currentAmount"}},
		{"padded description", DonationCategoryInput{Title: "Eye Camps", Description: "   cataract   ", TargetAmount: 5}, []string{"description"}},
		// Six characters, eighteen bytes.
		{"short devanagari description", DonationCategoryInput{Title: "गौशाला", Description: "गौशाला", TargetAmount: 5}, []string{"description"}},
		{"devanagari description", DonationCategoryInput{Title: "गौशाला", Description: "गौशाला सेवा", TargetAmount: 5}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fields, invalidCategoryFields(t, tt.in))
		})
	}
}

func TestDonationCategoryInputToCategoryTrims(t *testing.T) {
	c := DonationCategoryInput{Title: " Education ", Description: " Books and fees ", TargetAmount: 10}.ToCategory("cat-1")
	assert.Equal(t, "cat-1", c.ID)
	assert.Equal(t, "Education", c.Title)
	assert.Equal(t, "Books and fees", c.Description)
}

func TestAboutContentPatchFields(t *testing.T) {
	assert.True(t, AboutContentPatch{}.IsEmpty())

	sections := []AboutSection{{ID: "a", Order: 0}}
	p := AboutContentPatch{MainHeading: StringPtr("H"), Sections: &sections}
	fields := p.Fields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "H", fields["mainHeading"])
	sections[0].ID = "changed"
	assert.Equal(t, "a", fields["sections"].([]AboutSection)[0].ID)
}
