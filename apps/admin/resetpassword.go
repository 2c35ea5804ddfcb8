package main

func (cli *commandLine) resetPassword(uname, pwd string) error {
	tchr, err := cli.teacherSvc.SetPassword(uname, pwd)
	if err != nil {
		return err
	}
	logger.Printf("reset password for teacher %q", tchr.Username)
	return nil
}
