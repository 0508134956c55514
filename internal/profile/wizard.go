package profile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	kindPromptLabel     = "Connection type"
	hostPromptLabel     = "Host"
	portPromptLabel     = "Port"
	databasePromptLabel = "Database name"
	userPromptLabel     = "User"
	passwordPromptLabel = "Password"

	promptWithDefaultFormat = "%s (%s): "
	promptFormat            = "%s: "
	invalidPortErrorFormat  = "invalid port %q"
	passwordRequiredMessage = "a password is required"
)

var promptColor = color.New(color.FgCyan)

// Wizard collects connection profile fields interactively, pre-filling each
// prompt with the defaults of the selected kind.
type Wizard struct {
	inputReader  *bufio.Reader
	outputWriter io.Writer
}

// NewWizard builds a wizard reading answers from inputReader and writing
// prompts to outputWriter.
func NewWizard(inputReader io.Reader, outputWriter io.Writer) *Wizard {
	return &Wizard{inputReader: bufio.NewReader(inputReader), outputWriter: outputWriter}
}

// CollectProfile runs the interactive prompt sequence and returns a profile
// with kind defaults applied to any field the user left blank.
func (wizard *Wizard) CollectProfile() (ConnectionProfile, error) {
	kindNames := make([]string, 0)
	for _, supportedKind := range SupportedKinds() {
		kindNames = append(kindNames, string(supportedKind))
	}
	kindAnswer, kindError := wizard.prompt(kindPromptLabel, strings.Join(kindNames, "/"))
	if kindError != nil {
		return ConnectionProfile{}, kindError
	}
	connectionKind, parseError := ParseConnectionKind(kindAnswer)
	if parseError != nil {
		return ConnectionProfile{}, parseError
	}

	kindDefaults, _ := DefaultsFor(connectionKind)

	hostAnswer, hostError := wizard.prompt(hostPromptLabel, defaultHost)
	if hostError != nil {
		return ConnectionProfile{}, hostError
	}

	portAnswer, portError := wizard.prompt(portPromptLabel, strconv.Itoa(kindDefaults.Port))
	if portError != nil {
		return ConnectionProfile{}, portError
	}
	portNumber := 0
	if portAnswer != "" {
		parsedPort, portParseError := strconv.Atoi(portAnswer)
		if portParseError != nil {
			return ConnectionProfile{}, fmt.Errorf(invalidPortErrorFormat, portAnswer)
		}
		portNumber = parsedPort
	}

	databaseAnswer, databaseError := wizard.prompt(databasePromptLabel, kindDefaults.DatabaseName)
	if databaseError != nil {
		return ConnectionProfile{}, databaseError
	}
	userAnswer, userError := wizard.prompt(userPromptLabel, kindDefaults.User)
	if userError != nil {
		return ConnectionProfile{}, userError
	}
	passwordAnswer, passwordError := wizard.prompt(passwordPromptLabel, "")
	if passwordError != nil {
		return ConnectionProfile{}, passwordError
	}
	if passwordAnswer == "" {
		return ConnectionProfile{}, errors.New(passwordRequiredMessage)
	}

	collectedProfile := ConnectionProfile{
		Kind:         connectionKind,
		Host:         hostAnswer,
		Port:         portNumber,
		DatabaseName: databaseAnswer,
		User:         userAnswer,
		Password:     passwordAnswer,
	}
	collectedProfile.ApplyDefaults()
	return collectedProfile, nil
}

func (wizard *Wizard) prompt(label string, defaultValue string) (string, error) {
	if defaultValue != "" && defaultValue != "0" {
		promptColor.Fprintf(wizard.outputWriter, promptWithDefaultFormat, label, defaultValue)
	} else {
		promptColor.Fprintf(wizard.outputWriter, promptFormat, label)
	}

	answerLine, readError := wizard.inputReader.ReadString('\n')
	if readError != nil && answerLine == "" {
		return "", readError
	}
	return strings.TrimSpace(answerLine), nil
}
