package algorithms

import (
	"fmt"
	"sync"

	"github.com/hyperledger/aries-framework-go/component/log"
)

var logger = log.New("jose/algorithms")

// FamilyName identifies a family in the registry
type FamilyName string

const (
	FamilyHMACSHA   FamilyName = "HMAC-SHA"
	FamilyRSA       FamilyName = "RSA"
	FamilyEC        FamilyName = "EC"
	FamilyED        FamilyName = "ED"
	FamilySignature FamilyName = "SIGNATURE"
)

// familyOrder is the order reported by FamilyNames
var familyOrder = []FamilyName{FamilyHMACSHA, FamilyRSA, FamilyEC, FamilyED, FamilySignature}

// Registry holds the named algorithm families. It is not modified after
// NewRegistry returns and may be shared freely between goroutines.
type Registry struct {
	families map[FamilyName]*Family[Algorithm]
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, building it on first use
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry builds the leaf families and composes SIGNATURE from RSA, EC
// and ED. HMAC-SHA is not part of SIGNATURE.
func NewRegistry() *Registry {
	hmac := familyOf(FamilyHMACSHA, HS256, HS384, HS512)
	rsa := familyOf(FamilyRSA, RS256, RS384, RS512, PS256, PS384, PS512)
	ec := familyOf(FamilyEC, ES256, ES256K, ES384, ES512)
	ed := familyOf(FamilyED, EdDSA)

	signature := NewFamily[Algorithm]()
	for _, f := range []*Family[Algorithm]{rsa, ec, ed} {
		signature.Combine(f)
	}

	logger.Debugf("registry built: %s=%d %s=%d %s=%d %s=%d %s=%d",
		FamilyHMACSHA, hmac.Len(), FamilyRSA, rsa.Len(), FamilyEC, ec.Len(),
		FamilyED, ed.Len(), FamilySignature, signature.Len())

	return &Registry{
		families: map[FamilyName]*Family[Algorithm]{
			FamilyHMACSHA:   hmac,
			FamilyRSA:       rsa,
			FamilyEC:        ec,
			FamilyED:        ed,
			FamilySignature: signature,
		},
	}
}

// familyOf builds a family from a hand-written literal list.
// A duplicate in the list is a programming error and panics.
func familyOf(name FamilyName, algs ...Algorithm) *Family[Algorithm] {
	f := NewFamily[Algorithm]()
	for _, alg := range algs {
		if !f.Add(alg) {
			logger.Errorf("duplicate algorithm %s in family %s", alg.Name(), name)
			panic(fmt.Sprintf("algorithms: duplicate algorithm %s in family %s", alg.Name(), name))
		}
	}
	return f
}

// Family returns a copy of the named family. The copy may be modified
// without affecting the registry.
func (r *Registry) Family(name FamilyName) (*Family[Algorithm], bool) {
	f, ok := r.families[name]
	if !ok {
		return nil, false
	}
	return f.Clone(), true
}

// FamilyNames lists the registered family names
func (r *Registry) FamilyNames() []FamilyName {
	names := make([]FamilyName, len(familyOrder))
	copy(names, familyOrder)
	return names
}

// Contains reports whether alg is a member of the named family
func (r *Registry) Contains(name FamilyName, alg Algorithm) bool {
	f, ok := r.families[name]
	return ok && f.Contains(alg)
}

// FamiliesOf returns the names of all families containing alg
func (r *Registry) FamiliesOf(alg Algorithm) []FamilyName {
	var names []FamilyName
	for _, name := range familyOrder {
		if r.families[name].Contains(alg) {
			names = append(names, name)
		}
	}
	return names
}

// Parse resolves an algorithm name. "none" resolves to None; any other
// name must belong to the SIGNATURE family, matched by name alone.
// Returns ErrNotFound if the name is not recognized.
func (r *Registry) Parse(name string) (Algorithm, error) {
	if name == None.Name() {
		return None, nil
	}

	alg, ok := r.families[FamilySignature].Find(func(a Algorithm) bool {
		return a.Name() == name
	})
	if !ok {
		logger.Debugf("unresolved algorithm name %q", name)
		return Algorithm{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return alg, nil
}

// Parse resolves name against the default registry
func Parse(name string) (Algorithm, error) {
	return Default().Parse(name)
}
