package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWaitlistRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateWaitlistRequest
		field   string
		message string
	}{
		{
			name: "valid request",
			req:  CreateWaitlistRequest{Name: "Jane", Email: "jane@x.com", Role: "Founder"},
		},
		{
			name:    "missing name",
			req:     CreateWaitlistRequest{Email: "jane@x.com", Role: "Founder"},
			field:   "name",
			message: "Name is required",
		},
		{
			name:    "malformed email",
			req:     CreateWaitlistRequest{Name: "Jane", Email: "not-an-email", Role: "Founder"},
			field:   "email",
			message: "Please enter a valid email address",
		},
		{
			name:  "unknown role",
			req:   CreateWaitlistRequest{Name: "Jane", Email: "jane@x.com", Role: "Astronaut"},
			field: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vErr := tt.req.Validate()
			if tt.field == "" {
				assert.Nil(t, vErr)
				return
			}
			require.NotNil(t, vErr)
			assert.Equal(t, tt.field, vErr.Field)
			if tt.message != "" {
				assert.Equal(t, tt.message, vErr.Message)
			}
		})
	}
}

func TestCreateInvestorProfileRequestValidate(t *testing.T) {
	valid := func() *CreateInvestorProfileRequest {
		return &CreateInvestorProfileRequest{
			Name:         "Alex Capital",
			InvestorType: "Angel",
			CheckSize:    "<$50k",
			Sectors:      []string{"FinTech"},
			Stages:       []string{"Idea"},
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.Nil(t, valid().Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		req := valid()
		req.Name = ""
		vErr := req.Validate()
		require.NotNil(t, vErr)
		assert.Equal(t, "name", vErr.Field)
		assert.Equal(t, "Name is required", vErr.Message)
	})

	t.Run("unknown investor type", func(t *testing.T) {
		req := valid()
		req.InvestorType = "Hedge Fund"
		vErr := req.Validate()
		require.NotNil(t, vErr)
		assert.Equal(t, "investor_type", vErr.Field)
	})

	t.Run("empty sectors", func(t *testing.T) {
		req := valid()
		req.Sectors = nil
		vErr := req.Validate()
		require.NotNil(t, vErr)
		assert.Equal(t, "sectors", vErr.Field)
	})

	t.Run("empty stages", func(t *testing.T) {
		req := valid()
		req.Stages = []string{}
		vErr := req.Validate()
		require.NotNil(t, vErr)
		assert.Equal(t, "stages", vErr.Field)
	})
}

func TestCreatePartnerProfileRequestValidate(t *testing.T) {
	valid := func() *CreatePartnerProfileRequest {
		return &CreatePartnerProfileRequest{
			FullName:         "Sam Agency",
			CompanyName:      "Growth Partners",
			Email:            "sam@growth.example",
			Phone:            "+49123456",
			PartnerType:      "Agency",
			ServicesOffered:  []string{"Design"},
			IndustriesServed: []string{"SaaS B2B"},
			StagesServed:     []string{"Scaling"},
			LookingFor:       []string{"Clients"},
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.Nil(t, valid().Validate())
	})

	t.Run("missing phone", func(t *testing.T) {
		req := valid()
		req.Phone = ""
		vErr := req.Validate()
		require.NotNil(t, vErr)
		assert.Equal(t, "phone", vErr.Field)
	})

	t.Run("unknown partner type", func(t *testing.T) {
		req := valid()
		req.PartnerType = "Accelerator"
		vErr := req.Validate()
		require.NotNil(t, vErr)
		assert.Equal(t, "partner_type", vErr.Field)
	})
}

func TestCreateIndividualProfileRequestValidate(t *testing.T) {
	valid := func() *CreateIndividualProfileRequest {
		return &CreateIndividualProfileRequest{
			FullName:    "Dana Dev",
			Email:       "dana@dev.example",
			Phone:       "+49123456",
			ProfileType: "Freelancer",
			Skills:      []string{"Go"},
			LookingFor:  []string{"Projects"},
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.Nil(t, valid().Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		req := valid()
		req.Email = "dana"
		vErr := req.Validate()
		require.NotNil(t, vErr)
		assert.Equal(t, "email", vErr.Field)
	})

	t.Run("unknown profile type", func(t *testing.T) {
		req := valid()
		req.ProfileType = "Wizard"
		vErr := req.Validate()
		require.NotNil(t, vErr)
		assert.Equal(t, "profile_type", vErr.Field)
	})

	t.Run("empty skills", func(t *testing.T) {
		req := valid()
		req.Skills = nil
		vErr := req.Validate()
		require.NotNil(t, vErr)
		assert.Equal(t, "skills", vErr.Field)
	})
}

func TestCreateConnectionRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := CreateConnectionRequest{StartupID: "sp_abc"}
		assert.Nil(t, req.Validate())
	})

	t.Run("missing startup id", func(t *testing.T) {
		req := CreateConnectionRequest{}
		vErr := req.Validate()
		require.NotNil(t, vErr)
		assert.Equal(t, "startup_id", vErr.Field)
	})
}

func TestProfileKindIsValid(t *testing.T) {
	assert.True(t, ProfileKindStartup.IsValid())
	assert.True(t, ProfileKindPartner.IsValid())
	assert.True(t, ProfileKindIndividual.IsValid())
	assert.False(t, ProfileKind("waitlist").IsValid())
	assert.False(t, ProfileKind("").IsValid())
}

func TestStringArrayScanValue(t *testing.T) {
	arr := StringArray{"a", "b"}
	value, err := arr.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, value)

	var scanned StringArray
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, arr, scanned)

	var fromNil StringArray
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	nilValue, err := StringArray(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, nilValue)
}
