package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2beens/gymroutines/pkg"

	log "github.com/sirupsen/logrus"
)

// hashpass prints a bcrypt hash for GYMROUTINES_ADMIN_PASSWORD_HASH.
// The password is read from the first line of stdin unless -password is set.
func main() {
	password := flag.String("password", "", "admin password (read from stdin when empty)")
	flag.Parse()

	if err := run(*password, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("hash admin password: %s", err)
	}
}

func run(password string, in io.Reader, out io.Writer) error {
	if password == "" {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return errors.New("empty password")
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, hash)
	return err
}
