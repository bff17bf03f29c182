package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundernet/portal-backend/v1/models"
)

func validPartnerBody() map[string]interface{} {
	return map[string]interface{}{
		"full_name":         "Sam Agency",
		"company_name":      "Growth Partners",
		"email":             "sam@growth.example",
		"phone":             "+49123456",
		"partner_type":      "Agency",
		"services_offered":  []string{"Design"},
		"industries_served": []string{"SaaS B2B"},
		"stages_served":     []string{"Scaling"},
		"looking_for":       []string{"Clients"},
	}
}

func validIndividualBody() map[string]interface{} {
	return map[string]interface{}{
		"full_name":    "Dana Dev",
		"email":        "dana@dev.example",
		"phone":        "+49123456",
		"profile_type": "Freelancer",
		"skills":       []string{"Go"},
		"looking_for":  []string{"Projects"},
	}
}

func TestPartnerEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := signToken(t, "partner-1", "sam@growth.example")

	rec := env.request(t, http.MethodGet, "/api/partner", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.request(t, http.MethodPut, "/api/partner", token, validPartnerBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var profile models.PartnerProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Growth Partners", profile.CompanyName)
	assert.False(t, profile.Approved)

	rec = env.request(t, http.MethodGet, "/api/partner", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("validation failure names the field", func(t *testing.T) {
		body := validPartnerBody()
		body["phone"] = ""
		rec := env.request(t, http.MethodPut, "/api/partner", token, body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "phone", decodeError(t, rec).Field)
	})
}

func TestIndividualEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := signToken(t, "individual-1", "dana@dev.example")

	rec := env.request(t, http.MethodPut, "/api/individual", token, validIndividualBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var profile models.IndividualProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Dana Dev", profile.FullName)
	assert.Equal(t, models.StringArray{"Go"}, profile.Skills)

	rec = env.request(t, http.MethodGet, "/api/individual", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminModeratesAllProfileKinds(t *testing.T) {
	env := setupTestEnv(t)
	adminToken := signToken(t, "admin-1", adminEmail)

	partnerToken := signToken(t, "partner-1", "sam@growth.example")
	rec := env.request(t, http.MethodPut, "/api/partner", partnerToken, validPartnerBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	var partner models.PartnerProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &partner))

	individualToken := signToken(t, "individual-1", "dana@dev.example")
	rec = env.request(t, http.MethodPut, "/api/individual", individualToken, validIndividualBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("lists partners", func(t *testing.T) {
		rec := env.request(t, http.MethodGet, "/api/admin?type=partner", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var profiles []models.PartnerProfile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profiles))
		assert.Len(t, profiles, 1)
	})

	t.Run("lists individuals", func(t *testing.T) {
		rec := env.request(t, http.MethodGet, "/api/admin?type=individual", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var profiles []models.IndividualProfile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profiles))
		assert.Len(t, profiles, 1)
	})

	t.Run("approves a partner", func(t *testing.T) {
		rec := env.request(t, http.MethodPatch, "/api/admin?id="+partner.ID+"&type=partner", adminToken,
			map[string]bool{"approved": true})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated models.PartnerProfile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.True(t, updated.Approved)
	})
}
