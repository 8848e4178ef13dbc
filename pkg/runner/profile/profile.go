package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"github.com/prodipto2001/journal-stitch/pkg/profile"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

// Profile shows or updates the local user profile. With Interactive set the
// missing fields are prompted for.
type Profile struct {
	Name        string
	Gender      string
	Interactive bool

	Persistence store.Persistence
}

func (n *Profile) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not manage profile, no persistence")
	}

	if n.Name == "" && n.Gender == "" && !n.Interactive {
		return n.show()
	}

	current := n.Persistence.LoadProfile()
	if current == nil {
		current = &profile.Profile{}
	}

	if n.Name != "" {
		current.Name = n.Name
	}
	if n.Gender != "" {
		g, err := profile.ParseGender(n.Gender)
		if err != nil {
			return err
		}
		current.Gender = g
	}

	if n.Interactive {
		if err := n.prompt(current); err != nil {
			return err
		}
	}

	if err := current.Validate(); err != nil {
		return err
	}
	n.Persistence.SaveProfile(current)

	c := color.New(color.Faint)
	_, _ = c.Println("profile saved")
	return nil
}

func (n *Profile) show() error {
	p := n.Persistence.LoadProfile()
	if p == nil {
		c := color.New(color.Faint, color.Italic)
		_, _ = c.Println("no profile yet, run with --interactive to create one")
		return nil
	}
	t := color.New(color.Bold)
	_, _ = t.Println(p.Name)
	if p.Gender != "" {
		fmt.Println(string(p.Gender))
	}
	return nil
}

func (n *Profile) prompt(p *profile.Profile) error {
	namePrompt := promptui.Prompt{
		Label:   "Name",
		Default: p.Name,
		Validate: func(input string) error {
			if input == "" {
				return profile.ErrNoName
			}
			return nil
		},
	}
	name, err := namePrompt.Run()
	if err != nil {
		return err
	}
	p.Name = name

	genders := []string{
		string(profile.Female),
		string(profile.Male),
		string(profile.Other),
	}
	genderSelect := promptui.Select{
		Label: "Gender",
		Items: genders,
	}
	_, g, err := genderSelect.Run()
	if err != nil {
		return err
	}
	p.Gender = profile.Gender(g)

	return nil
}
