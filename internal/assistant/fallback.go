package assistant

import "strings"

var fallbackTopics = []struct {
	keys   []string
	answer string
}{
	{
		keys: []string{"agree", "differ", "fail", "same", "match", "commut"},
		answer: "The two shared values differ because quaternion multiplication is not commutative. " +
			"Party A computes (AB)·G·(AB)⁻¹ while party B computes (BA)·G·(BA)⁻¹. " +
			"They only coincide when AB and BA conjugate G the same way, which almost never happens for random secrets. " +
			"In Diffie-Hellman the group is abelian, so g^(ab) = g^(ba) and both sides meet.",
	},
	{
		keys: []string{"invers", "invert"},
		answer: "A quaternion q is inverted as conj(q)·N⁻¹ where N = w² + x² + y² + z² mod m. " +
			"N⁻¹ comes from the extended Euclidean algorithm and exists only when gcd(N, m) = 1. " +
			"For a prime modulus that means every quaternion with N ≠ 0 is invertible.",
	},
	{
		keys: []string{"eavesdrop", "attack", "search", "break", "secure"},
		answer: "An observer sees G and T = S·G·S⁻¹ and needs any S' with S'·G·S'⁻¹ = T. " +
			"For a toy modulus this conjugacy search is a brute force over m⁴ candidates. " +
			"The recovered S' need not equal S, but it conjugates G identically.",
	},
	{
		keys:   []string{"conjugat", "public"},
		answer: "Each party publishes its secret S applied to the base by conjugation: T = S·G·S⁻¹. Conjugation keeps the scalar part w and the norm of G, and rotates its vector part (x, y, z).",
	},
	{
		keys:   []string{"hamilton", "multipl", "product"},
		answer: "The Hamilton product follows i² = j² = k² = ijk = -1. In particular i·j = k but j·i = -k, so the order of the factors matters.",
	},
}

const fallbackDefault = "The assistant service is not available, so here is the short version. " +
	"This simulator tries a Diffie-Hellman style exchange in the quaternions mod m, using conjugation S·G·S⁻¹ in place of exponentiation. " +
	"Because quaternion multiplication is not commutative, the two derived values almost never agree. " +
	"Ask about agreement, inverses, conjugation or eavesdropping for more detail."

// Fallback returns built-in English text for utterance.
func Fallback(utterance string) string {
	u := strings.ToLower(utterance)
	for _, t := range fallbackTopics {
		for _, k := range t.keys {
			if strings.Contains(u, k) {
				return t.answer
			}
		}
	}
	return fallbackDefault
}
