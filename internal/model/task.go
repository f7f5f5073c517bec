package model

import "math/rand"

// Task is a single catalog entry. Time is the estimated minutes and is
// descriptive only; completion awards Points regardless of how long the
// player actually took.
type Task struct {
	ID              string `json:"id" bson:"id"`
	Name            string `json:"name" bson:"name"`
	Time            int    `json:"time" bson:"time"`
	Points          int    `json:"points" bson:"points"`
	PartnerRequired bool   `json:"partnerRequired" bson:"partnerRequired"`
}

// TaskCatalog is a game's fixed task set, generated once at creation and
// immutable afterwards.
type TaskCatalog struct {
	Daily  []Task `json:"daily" bson:"daily"`
	Weekly []Task `json:"weekly" bson:"weekly"`
	Silly  []Task `json:"silly" bson:"silly"`
}

var dailyTasks = []Task{
	{ID: "dishes", Name: "Do the dishes", Time: 3, Points: 15},
	{ID: "kitchen_counter", Name: "Wipe kitchen counters", Time: 2, Points: 10},
	{ID: "make_beds", Name: "Make all beds", Time: 2, Points: 10},
	{ID: "bathroom_quick", Name: "Quick bathroom wipe down", Time: 2, Points: 10},
	{ID: "living_room_tidy", Name: "Tidy living room", Time: 3, Points: 15},
}

var weeklyTasks = []Task{
	{ID: "deep_clean_bathroom", Name: "Deep clean bathroom", Time: 8, Points: 40, PartnerRequired: true},
	{ID: "vacuum_house", Name: "Vacuum entire house", Time: 6, Points: 30, PartnerRequired: true},
	{ID: "deep_clean_kitchen", Name: "Deep clean kitchen", Time: 10, Points: 50, PartnerRequired: true},
	{ID: "mop_floors", Name: "Mop all floors", Time: 5, Points: 25, PartnerRequired: true},
	{ID: "laundry_complete", Name: "Complete laundry cycle", Time: 4, Points: 20},
}

var sillyPool = []Task{
	{ID: "freestyle_rap", Name: "Perform a 30-second freestyle rap about cleaning", Time: 1, Points: 25},
	{ID: "dust_dance", Name: "Do the \"dust bunny dance\" while dusting", Time: 2, Points: 20},
	{ID: "sing_dishwashing", Name: "Sing an opera about dishwashing", Time: 2, Points: 20},
	{ID: "sock_puppet_show", Name: "Perform a sock puppet show about laundry", Time: 3, Points: 30, PartnerRequired: true},
	{ID: "backwards_vacuum", Name: "Vacuum while walking backwards", Time: 3, Points: 25},
	{ID: "mop_limbo", Name: "Do the limbo while mopping", Time: 2, Points: 25},
	{ID: "toilet_monologue", Name: "Deliver a dramatic monologue to the toilet", Time: 1, Points: 20},
	{ID: "superhero_cleaning", Name: "Clean like your favorite superhero", Time: 2, Points: 20},
}

// GenerateCatalog builds a fresh task set: the fixed daily and weekly lists
// plus 3-4 silly tasks sampled without replacement from the pool. The sample
// is uniform and does not need to be reproducible across games.
func GenerateCatalog() TaskCatalog {
	picks := make([]Task, len(sillyPool))
	copy(picks, sillyPool)
	rand.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})

	return TaskCatalog{
		Daily:  append([]Task(nil), dailyTasks...),
		Weekly: append([]Task(nil), weeklyTasks...),
		Silly:  picks[:3+rand.Intn(2)],
	}
}

// Index maps task id to its definition across all three lists.
func (c TaskCatalog) Index() map[string]Task {
	idx := make(map[string]Task, len(c.Daily)+len(c.Weekly)+len(c.Silly))
	for _, list := range [][]Task{c.Daily, c.Weekly, c.Silly} {
		for _, t := range list {
			idx[t.ID] = t
		}
	}
	return idx
}
