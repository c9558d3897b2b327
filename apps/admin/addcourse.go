package main

import (
	"fmt"

	"github.com/jjyf27/redpro/core"
	"github.com/jjyf27/redpro/core/course"
)

func (cli *commandLine) addCourse(c course.Course) error {
	c.Title = core.CleanString(c.Title)
	c.Author = core.CleanString(c.Author)

	c, err := cli.crsSvc.Create(c)
	if err != nil {
		return err
	}
	fmt.Printf("course %d %q added\n", c.ID, c.Title)
	return nil
}
