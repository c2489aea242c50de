// Package menu is the public API for a FlavorScape session: it opens a
// Store, owns it through a Session, validates entry form input, filters by
// course and derives the menu statistics.
//
// Example:
//
//	store, err := menu.NewStore(types.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	session := menu.NewSession(store)
//	defer session.Close()
//
//	form := menu.NewForm(menu.NewValidator("R"))
//	form.Name, form.Description, form.Price = "Soup", "Hot", "R50"
//	form.Course = types.CourseStarters
//	_, err = form.Submit(session)
package menu
