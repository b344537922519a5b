package policy

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/hyperledger/aries-framework-go/component/log"
	"gopkg.in/yaml.v3"

	"github.com/alexadamm/jose-algorithms/pkg/jose/algorithms"
)

var logger = log.New("jose/policy")

// Policy selects the algorithms a key-management component accepts
type Policy struct {
	// MinimumRequirement drops algorithms ranked below this level.
	// Empty means no floor.
	MinimumRequirement algorithms.Requirement `yaml:"minimum_requirement,omitempty"`

	// Families lists the registry families to draw from.
	// Defaults to SIGNATURE if empty.
	Families []algorithms.FamilyName `yaml:"families,omitempty"`

	// Allow restricts the result to these algorithm names.
	// Empty means every member of the selected families.
	Allow []string `yaml:"allow,omitempty"`
}

// DefaultPolicy accepts every member of the SIGNATURE family
var DefaultPolicy = Policy{
	Families: []algorithms.FamilyName{algorithms.FamilySignature},
}

// Load decodes a YAML policy document. Unknown fields are rejected.
// An empty document yields DefaultPolicy.
func Load(r io.Reader) (*Policy, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Policy
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			d := DefaultPolicy
			d.Families = slices.Clone(DefaultPolicy.Families)
			return &d, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	if p.MinimumRequirement != "" && !p.MinimumRequirement.Valid() {
		return nil, fmt.Errorf("%w: unknown requirement %q", ErrInvalidPolicy, p.MinimumRequirement)
	}

	if len(p.Families) == 0 {
		p.Families = slices.Clone(DefaultPolicy.Families)
	}
	known := algorithms.Default().FamilyNames()
	for _, name := range p.Families {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("%w: unknown family %q", ErrInvalidPolicy, name)
		}
	}

	logger.Debugf("loaded policy: families=%v minimum=%q allow=%v",
		p.Families, p.MinimumRequirement, p.Allow)

	return &p, nil
}

// LoadFile reads a YAML policy document from path
func LoadFile(path string) (*Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open policy: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks the policy against reg: every family must exist and every
// allow-listed name must belong to one of them
func (p *Policy) Validate(reg *algorithms.Registry) error {
	_, err := p.selected(reg)
	return err
}

// Apply returns a new family containing the algorithms the policy accepts.
// The registry is not modified.
func (p *Policy) Apply(reg *algorithms.Registry) (*algorithms.Family[algorithms.Algorithm], error) {
	out, err := p.selected(reg)
	if err != nil {
		return nil, err
	}

	if len(p.Allow) > 0 {
		allowed := make([]algorithms.Algorithm, 0, len(p.Allow))
		for _, name := range p.Allow {
			alg, _ := findByName(out, name)
			allowed = append(allowed, alg)
		}
		out = out.RetainAll(allowed...)
	}

	floor := p.MinimumRequirement.Rank()
	for _, alg := range out.Values() {
		req, _ := alg.Requirement()
		if req.Rank() < floor {
			out.Remove(alg)
		}
	}

	return out, nil
}

// Permits reports whether the named algorithm is accepted by the policy
func (p *Policy) Permits(reg *algorithms.Registry, name string) bool {
	accepted, err := p.Apply(reg)
	if err != nil {
		logger.Warnf("policy check for %q failed: %v", name, err)
		return false
	}
	_, ok := findByName(accepted, name)
	return ok
}

// selected merges the policy's families and checks the allow list against them
func (p *Policy) selected(reg *algorithms.Registry) (*algorithms.Family[algorithms.Algorithm], error) {
	names := p.Families
	if len(names) == 0 {
		names = DefaultPolicy.Families
	}

	out := algorithms.NewFamily[algorithms.Algorithm]()
	for _, name := range names {
		f, ok := reg.Family(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown family %q", ErrInvalidPolicy, name)
		}
		out.Merge(f)
	}

	for _, name := range p.Allow {
		if _, ok := findByName(out, name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
		}
	}

	return out, nil
}

func findByName(f *algorithms.Family[algorithms.Algorithm], name string) (algorithms.Algorithm, bool) {
	return f.Find(func(a algorithms.Algorithm) bool {
		return a.Name() == name
	})
}
