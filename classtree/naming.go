package classtree

import (
	"fmt"

	"github.com/clasmatch/clasmatch/domain"
)

// lastResortPrefix marks a synthetic last-resort post id, per the naming
// convention: an identifier starting with "L" followed by an applicant id
// names that applicant's last-resort post.
const lastResortPrefix = "L"

// classificationName formats the "C_{id1}_{id2}" node name.
func classificationName(id1, id2 string) string {
	return fmt.Sprintf("C_%s_%s", id1, id2)
}

// postKey returns the string used as id1/id2 for a PostRef: the real post
// ID, or "L"+applicant for a last-resort post.
func postKey(post domain.PostRef) string {
	if owner, ok := post.LastResortOwner(); ok {
		return lastResortPrefix + string(owner)
	}
	real, _ := post.Real()
	return string(real)
}
