package profile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWizardBlankAnswersUseKindDefaults verifies that pressing enter on every
// prompt after selecting a kind yields the kind's default values.
func TestWizardBlankAnswersUseKindDefaults(t *testing.T) {
	answers := strings.NewReader("postgres\n\n\n\n\nsecret\n")
	var prompts bytes.Buffer

	wizard := NewWizard(answers, &prompts)
	collectedProfile, collectError := wizard.CollectProfile()
	require.NoError(t, collectError)

	assert.Equal(t, KindPostgres, collectedProfile.Kind)
	assert.Equal(t, "localhost", collectedProfile.Host)
	assert.Equal(t, 5432, collectedProfile.Port)
	assert.Equal(t, "postgres", collectedProfile.DatabaseName)
	assert.Equal(t, "postgres", collectedProfile.User)
	assert.Equal(t, "secret", collectedProfile.Password)
	assert.Contains(t, prompts.String(), "Connection type")
}

// TestWizardExplicitAnswersOverrideDefaults verifies typed values win over the
// kind defaults.
func TestWizardExplicitAnswersOverrideDefaults(t *testing.T) {
	answers := strings.NewReader("mysql\ndb.internal\n3307\nappdb\nappuser\npw\n")

	wizard := NewWizard(answers, &bytes.Buffer{})
	collectedProfile, collectError := wizard.CollectProfile()
	require.NoError(t, collectError)

	assert.Equal(t, KindMySQL, collectedProfile.Kind)
	assert.Equal(t, "db.internal", collectedProfile.Host)
	assert.Equal(t, 3307, collectedProfile.Port)
	assert.Equal(t, "appdb", collectedProfile.DatabaseName)
	assert.Equal(t, "appuser", collectedProfile.User)
}

// TestWizardRejectsUnknownKind verifies that an unsupported connection type
// fails the wizard immediately.
func TestWizardRejectsUnknownKind(t *testing.T) {
	answers := strings.NewReader("oracle\n")

	wizard := NewWizard(answers, &bytes.Buffer{})
	_, collectError := wizard.CollectProfile()
	assert.Error(t, collectError)
}

// TestWizardRequiresPassword verifies that a blank password is rejected.
func TestWizardRequiresPassword(t *testing.T) {
	answers := strings.NewReader("postgres\n\n\n\n\n\n")

	wizard := NewWizard(answers, &bytes.Buffer{})
	_, collectError := wizard.CollectProfile()
	assert.Error(t, collectError)
}
