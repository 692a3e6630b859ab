// Package check defines the lint and test tools the harness delegates
// into the dev container, and the result types produced by running them.
package check

// Check describes a single tool invocation executed inside the
// container. The tool itself is an external collaborator; a Check only
// knows its name and fixed argument list.
type Check interface {
	// Name is the identifier used to select this check on the CLI.
	Name() string
	// Argv is the command and arguments executed in the container.
	Argv() []string
	// Description is a short human-readable summary of what the check does.
	Description() string
}

type genericCheckDefinition struct {
	name        string
	argv        []string
	description string
}

func (pd *genericCheckDefinition) Name() string {
	return pd.name
}

func (pd *genericCheckDefinition) Argv() []string {
	return pd.argv
}

func (pd *genericCheckDefinition) Description() string {
	return pd.description
}

// NewGenericCheck returns a basic check implementation with the
// provided inputs. Developers can always define structs with internal
// keys and methods and have those fulfill the Check interface, but for
// fixed argv tools this generic form is all that is needed.
func NewGenericCheck(name string, argv []string, description string) Check {
	return &genericCheckDefinition{
		name:        name,
		argv:        argv,
		description: description,
	}
}
