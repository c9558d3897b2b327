package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/jjyf27/redpro/core"
	"github.com/jjyf27/redpro/core/course"
	"github.com/jjyf27/redpro/core/order"
	"github.com/jjyf27/redpro/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf   *core.Config
	usrSvc *user.Service
	crsSvc *course.Service
	ordSvc *order.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addcourse -title TITLE -author AUTHOR -price PRICE - add a course to the catalog")
	fmt.Println("  listorders - list placed orders")
	fmt.Println("  adduser -firstname NAME -lastname NAME -email EMAIL -phone PHONE - add a user")
	fmt.Println("  repaircart - sanitize the shared cart document")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addCourseCmd := flag.NewFlagSet("addcourse", flag.ExitOnError)
	addCourseTitle := addCourseCmd.String("title", "", "The course title.")
	addCourseAuthor := addCourseCmd.String("author", "", "The course author.")
	addCoursePrice := addCourseCmd.Float64("price", 0, "The course price.")
	addCourseListPrice := addCourseCmd.Float64("listprice", 0, "The pre-discount list price.")
	addCourseImage := addCourseCmd.String("image", "", "The course image reference.")
	addCourseCategory := addCourseCmd.String("category", "", "The course category.")
	addCourseDuration := addCourseCmd.String("duration", "", "The course duration label.")

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserFirstName := addUserCmd.String("firstname", "", "The user's first name.")
	addUserLastName := addUserCmd.String("lastname", "", "The user's last name.")
	addUserEmail := addUserCmd.String("email", "", "The user's email. The password will be prompted next.")
	addUserPhone := addUserCmd.String("phone", "", "The user's phone number.")

	switch args[1] {
	case "addcourse":
		if err := addCourseCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addCourseTitle == "" || *addCoursePrice <= 0 {
			addCourseCmd.Usage()
			return errHelp
		}
		return cli.addCourse(course.Course{
			Title:     *addCourseTitle,
			Author:    *addCourseAuthor,
			Price:     *addCoursePrice,
			ListPrice: *addCourseListPrice,
			ImageRef:  *addCourseImage,
			Category:  *addCourseCategory,
			Duration:  *addCourseDuration,
		})
	case "listorders":
		return cli.listOrders()
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserFirstName == "" || *addUserLastName == "" || *addUserEmail == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserFirstName, *addUserLastName, *addUserEmail, *addUserPhone, string(pwd))
	case "repaircart":
		return cli.repairCart()
	default:
		cli.printUsage()
		return errHelp
	}
}
