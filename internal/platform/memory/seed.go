package memory

import (
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/mergington-activities/internal/domain"
	"gopkg.in/yaml.v3"
)

// seedActivity mirrors one entry of the GET /activities body so a seed file
// can be produced by saving that response as YAML.
type seedActivity struct {
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// DefaultSeed returns the built-in activity catalog.
func DefaultSeed() []*domain.Activity {
	return []*domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball",
			Description:     "Practice drills and play in inter-school basketball games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"marcus@mergington.edu"},
		},
		{
			Name:            "Volleyball",
			Description:     "Build teamwork and compete in the school volleyball league",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"ava@mergington.edu"},
		},
		{
			Name:            "Digital Art",
			Description:     "Create illustrations and animations with digital tools",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"lily@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce school theater performances",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"noah@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Math Olympiad",
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu"},
		},
	}
}

// LoadSeedFile reads activities from a YAML seed file.
func LoadSeedFile(path string) ([]*domain.Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	activities, err := ParseSeed(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return activities, nil
}

// ParseSeed decodes a YAML mapping of activity name to activity attributes.
// Entries are returned in document order.
func ParseSeed(r io.Reader) ([]*domain.Activity, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []*domain.Activity{}, nil
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("seed must contain a single document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("seed must be a mapping of activity name to activity, line %d", root.Line)
	}

	// Mapping content alternates key and value nodes.
	activities := make([]*domain.Activity, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var entry seedActivity
		if err := valueNode.Decode(&entry); err != nil {
			return nil, fmt.Errorf("activity %q: %w", keyNode.Value, err)
		}

		activity, err := domain.NewActivity(
			keyNode.Value,
			entry.Description,
			entry.Schedule,
			entry.MaxParticipants,
			entry.Participants,
		)
		if err != nil {
			return nil, fmt.Errorf("activity %q (line %d): %w", keyNode.Value, keyNode.Line, err)
		}
		activities = append(activities, activity)
	}

	return activities, nil
}
