package brphone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "formatted number", input: "(11) 99876-5432", want: "11998765432"},
		{name: "international prefix", input: "+55 11 99876-5432", want: "5511998765432"},
		{name: "already digits", input: "11998765432", want: "11998765432"},
		{name: "letters and spaces", input: "tel: 11 9.9876.5432", want: "11998765432"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "one digit", input: "1", want: "1"},
		{name: "two digits stay raw", input: "11", want: "11"},
		{name: "three digits open the area code", input: "119", want: "(11) 9"},
		{name: "seven digits", input: "1199876", want: "(11) 99876"},
		{name: "eight digits add the dash", input: "11998765", want: "(11) 99876-5"},
		{name: "full mobile", input: "11998765432", want: "(11) 99876-5432"},
		{name: "extra digits are dropped", input: "119987654321999", want: "(11) 99876-5432"},
		{name: "idempotent on own output", input: "(11) 99876-5432", want: "(11) 99876-5432"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.input))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid mobile", input: "11998765432", wantErr: nil},
		{name: "valid mobile with formatting", input: "(11) 99876-5432", wantErr: nil},
		{name: "valid landline length", input: "1133334444", wantErr: nil},
		{name: "valid with country code", input: "5511998765432", wantErr: nil},
		{name: "too short", input: "119987654", wantErr: ErrTooShort},
		{name: "empty", input: "", wantErr: ErrTooShort},
		{name: "too long", input: "55119987654321", wantErr: ErrTooLong},
		{name: "unknown area code 10", input: "10998765432", wantErr: ErrInvalidAreaCode},
		{name: "unknown area code 20", input: "20998765432", wantErr: ErrInvalidAreaCode},
		{name: "unknown area code 90", input: "90998765432", wantErr: ErrInvalidAreaCode},
		{name: "eleven digits without mobile nine", input: "11898765432", wantErr: ErrNotMobile},
		{name: "country code with bad ddd", input: "5520998765432", wantErr: ErrInvalidAreaCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestToInternational(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "thirteen digits unchanged", input: "5511998765432", want: "5511998765432"},
		{name: "eleven digits get country code", input: "11998765432", want: "5511998765432"},
		{name: "ten digits get mobile nine inserted", input: "1198765432", want: "5511998765432"},
		{name: "formatted input is normalized first", input: "(11) 99876-5432", want: "5511998765432"},
		{name: "nine digits rejected", input: "119987654", wantErr: ErrInvalidPhone},
		{name: "twelve digits rejected", input: "551199876543", wantErr: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInternational(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
