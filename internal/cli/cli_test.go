package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gym-portal/internal/delivery/dto"
	"gym-portal/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "gymctl", cmd.Use)

	for _, name := range []string{"signup", "users", "bmi"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	apiFlag := cmd.PersistentFlags().Lookup("api")
	require.NotNil(t, apiFlag)
	assert.Equal(t, wizard.DefaultBaseURL, apiFlag.DefValue)
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "", "--format", "xml", "bmi", "--weight", "70", "--height", "175")
	assert.ErrorContains(t, err, "invalid format")
}

func TestBMICommand(t *testing.T) {
	out, err := execute(t, "", "bmi", "--weight", "70", "--height", "175")
	require.NoError(t, err)
	assert.Contains(t, out, "BMI: 22.86 (Normal)")
	assert.Contains(t, out, "Healthy weight: 56.7 kg - 76.6 kg")

	out, err = execute(t, "", "--format", "json", "bmi", "--weight", "154", "--weight-unit", "lbs", "--height", "5.75", "--height-unit", "ft")
	require.NoError(t, err)
	var result map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "22.74", result["bmi"])

	_, err = execute(t, "", "bmi", "--weight", "70", "--height", "175", "--height-unit", "yd")
	assert.ErrorContains(t, err, "invalid height unit")
}

func TestUsersCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"user_id":1,"user_name":"ann","email":"a@b.com","created_at":"2025-09-15T10:00:00Z"}]`))
	}))
	defer srv.Close()

	out, err := execute(t, "", "--api", srv.URL, "users")
	require.NoError(t, err)
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "ann")
	assert.Contains(t, out, "2025-09-15")
}

func TestUsersCommandReadsEnv(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	t.Setenv("GYM_API_URL", srv.URL)

	out, err := execute(t, "", "--format", "json", "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

// signupAnswers fills every prompt in order. The first pass through step 2
// leaves height blank so the wizard refuses to advance once.
var signupAnswers = strings.Join([]string{
	// step 1
	"ann", "a@b.com", "pw", "pw", "555", "female", "", "1990-04-02", "yoga", "",
	// step 2, first attempt
	"", "70", "", "", "n",
	// step 2, second attempt
	"", "", "", "175", "y",
	"Asthma", "mild", "", "", "/tmp/scan.png", "n",
	// step 3
	"Mom", "Parent", "x", "123", "n",
	// step 4
	"y", "y", "y", "y", "y", "y",
}, "\n") + "\n"

func TestSignupCommand(t *testing.T) {
	var got dto.SignupRequest
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"username":"ann","email":"a@b.com"}`))
	}))
	defer srv.Close()

	out, err := execute(t, signupAnswers, "--api", srv.URL, "signup")
	require.NoError(t, err)

	assert.Contains(t, out, wizard.MsgWeightHeightRequired)
	assert.Contains(t, out, "BMI: 22.86 (Normal)")
	assert.Contains(t, out, "User ann registered successfully!")
	assert.Contains(t, out, "Step 2/4  Health Information  [/signup/healthInfo]")
	assert.Contains(t, out, "Log in at /userDashboard")
	assert.Equal(t, 1, calls)

	assert.Equal(t, "ann", got.PersonalInfo.Username)
	assert.Equal(t, "yes", got.HealthInfo.HasConditions)
	require.Len(t, got.HealthInfo.MedicalConditions, 1)
	assert.Equal(t, "Asthma", got.HealthInfo.MedicalConditions[0].Name)
	assert.Empty(t, got.HealthInfo.MedicalConditions[0].Attachment)
	require.Len(t, got.GeneralInfo.Contacts, 1)
	assert.Equal(t, "Mom", got.GeneralInfo.Contacts[0].Name)
	assert.True(t, bool(got.TermsAccepted))
}

func TestSignupCommandStopsWithoutTerms(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	answers := strings.Replace(signupAnswers, "y\ny\ny\ny\ny\ny\n", "y\ny\ny\ny\ny\nn\n", 1)
	_, err := execute(t, answers, "--api", srv.URL, "signup")
	assert.ErrorContains(t, err, "terms were not accepted")
	assert.Zero(t, calls)
}

func TestSignupCommandSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"All fields are required"}`))
	}))
	defer srv.Close()

	_, err := execute(t, signupAnswers, "--api", srv.URL, "signup")
	assert.EqualError(t, err, "All fields are required")
}

func TestSignupCommandRunsOutOfInput(t *testing.T) {
	_, err := execute(t, "ann\n", "signup")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
