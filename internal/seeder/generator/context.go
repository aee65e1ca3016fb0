package generator

import "github.com/dmitrijs2005/homeseed/internal/seeder/models"

// ResidenceContext is the state carried while one residence is generated:
// its owner, the catalog templates and the stored state of every object
// resolved so far, keyed by vision hash.
type ResidenceContext struct {
	User      *models.User
	Residence *models.Residence
	Catalog   []*models.Object

	seen map[string]*models.Object
}

func NewResidenceContext(user *models.User, residence *models.Residence, catalog []*models.Object) *ResidenceContext {
	return &ResidenceContext{
		User:      user,
		Residence: residence,
		Catalog:   catalog,
		seen:      make(map[string]*models.Object),
	}
}

// Track records obj as the live state for its vision hash.
func (rc *ResidenceContext) Track(obj *models.Object) {
	rc.seen[obj.VisionHash] = obj
}

func (rc *ResidenceContext) Tracked(visionHash string) (*models.Object, bool) {
	obj, ok := rc.seen[visionHash]
	return obj, ok
}

// Unseen returns the catalog templates that were never resolved.
func (rc *ResidenceContext) Unseen() []*models.Object {
	var out []*models.Object
	for _, t := range rc.Catalog {
		if _, ok := rc.seen[t.VisionHash]; !ok {
			out = append(out, t)
		}
	}
	return out
}
