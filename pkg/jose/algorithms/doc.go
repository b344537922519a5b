/*
Package algorithms implements a registry of JOSE signing algorithm identifiers.

Each identifier is an Algorithm descriptor carrying its RFC 2119
implementation requirement. Descriptors are grouped into families:

- HMAC-SHA
  - HS256, HS384, HS512

- RSA
  - RS256 (RECOMMENDED), RS384, RS512
  - PS256, PS384, PS512

- EC
  - ES256 (RECOMMENDED), ES256K, ES384, ES512

- ED
  - EdDSA

- SIGNATURE
  - union of RSA, EC and ED

Names resolve through Parse, which accepts "none" and the members of
SIGNATURE only:

	alg, err := algorithms.Parse("RS256")
	if errors.Is(err, algorithms.ErrNotFound) {
	    // unsupported alg header
	}

Families returned by the registry are copies and may be modified freely:

	rsa, _ := algorithms.Default().Family(algorithms.FamilyRSA)
	rsa.Remove(algorithms.RS384)
*/
package algorithms
