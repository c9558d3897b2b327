package main

import (
	"io/ioutil"
	"net/mail"
	"os"
	"path/filepath"
	"testing"

	"github.com/jjyf27/redpro/core"
	"github.com/jjyf27/redpro/core/course"
	"github.com/jjyf27/redpro/core/order"
	"github.com/jjyf27/redpro/core/user"
	emailsvc "github.com/jjyf27/redpro/services/email"
	dummydb "github.com/jjyf27/redpro/storage/database/dummy"
)

func TestMain(m *testing.M) {
	core.InitValidators()
	os.Exit(m.Run())
}

func setup(t *testing.T) *commandLine {
	t.Helper()

	dir, err := ioutil.TempDir("", "admin")
	if err != nil {
		t.Fatalf("TempDir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	conf := &core.Config{
		AppName:    "RedPro",
		TestMode:   true,
		AdminEmail: mail.Address{Address: "admin@redpro.pe"},
		Cart:       core.CartConfig{Path: filepath.Join(dir, "cart.json")},
	}
	db, _ := dummydb.Open()
	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	return &commandLine{
		conf:   conf,
		usrSvc: user.NewService(dummydb.NewUserRepository(db)),
		crsSvc: course.NewService(dummydb.NewCourseRepository(db), nil, nil),
		ordSvc: order.NewService(dummydb.NewOrderRepository(db), mailSvc, conf, nil),
	}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
	extra   interface{}
}

func Test_commandLine_addCourse(t *testing.T) {
	cli := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"addcourse"}, wantErr: errHelp},
		{name: "missing price", args: []string{"addcourse", "-title", "Terraform desde Cero"}, wantErr: errHelp},
		{name: "ok", args: []string{"addcourse", "-title", "Terraform desde Cero", "-author", "Ana", "-price", "149.99"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	courses, err := cli.crsSvc.Query(0)
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if len(courses) != 1 || courses[0].Title != "Terraform desde Cero" {
		t.Errorf("catalog = %v, want the one added course", courses)
	}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{
			name:    "email but no password",
			args:    []string{"adduser", "-firstname", "María", "-lastname", "Quispe", "-email", "maria@test.pe"},
			wantErr: errHelp,
		},
		{
			name:  "ok",
			args:  []string{"adduser", "-firstname", "María", "-lastname", "Quispe", "-email", "maria@test.pe", "-phone", "987654321"},
			extra: extra{pwd: "claveSegura42"},
		},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	usr, err := cli.usrSvc.GetByEmail("maria@test.pe")
	if err != nil {
		t.Fatalf("GetByEmail() failed: %v", err)
	}
	if err := usr.CheckPassword("claveSegura42"); err != nil {
		t.Error("stored password does not match the prompted one")
	}
}

func Test_commandLine_listOrders(t *testing.T) {
	cli := setup(t)

	if err := cli.run([]string{"admin", "listorders"}); err != nil {
		t.Errorf("cli.run() error = %v, want nil", err)
	}
}

func Test_commandLine_repairCart(t *testing.T) {
	cli := setup(t)

	// a corrupt document left behind by an interrupted writer
	if err := os.MkdirAll(filepath.Dir(cli.conf.Cart.Path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	payload := []byte(`[{"id":"7","name":"a","unit_price":1},{"id":"7","name":"b","unit_price":2}]`)
	if err := ioutil.WriteFile(cli.conf.Cart.Path, payload, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if err := cli.run([]string{"admin", "repaircart"}); err != nil {
		t.Errorf("cli.run() error = %v, want nil", err)
	}

	repaired, err := ioutil.ReadFile(cli.conf.Cart.Path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	want := `[{"id":"7","name":"a","unit_price":1,"quantity":1}]`
	if string(repaired) != want {
		t.Errorf("repaired payload = %s, want %s", repaired, want)
	}
}
