package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"miniblog/internal/render"
	"miniblog/internal/services"
	"miniblog/internal/session"
)

// shell is the stand-in for the graphical client: it owns exactly one
// session and invokes the data-access operations one at a time.
type shell struct {
	svc  *services.Service
	sess *session.Session
	in   *bufio.Reader
	out  io.Writer
}

func newShell(svc *services.Service, sess *session.Session, in io.Reader, out io.Writer) *shell {
	return &shell{svc: svc, sess: sess, in: bufio.NewReader(in), out: out}
}

func (sh *shell) run() error {
	fmt.Fprintln(sh.out, "blogdesk — type 'help' for commands, 'quit' to exit")
	for {
		fmt.Fprintf(sh.out, "%s> ", sh.sess.UserName())
		line, err := sh.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		sh.dispatch(cmd, args)
	}
}

func (sh *shell) dispatch(cmd string, args []string) {
	var err error
	switch cmd {
	case "help":
		sh.help()
	case "register":
		err = sh.register()
	case "login":
		err = sh.login(args)
	case "logout":
		sh.sess.Clear()
		fmt.Fprintln(sh.out, "logged out")
	case "whoami":
		if id, name, ok := sh.sess.Identity(); ok {
			fmt.Fprintf(sh.out, "#%d %s\n", id, name)
		} else {
			fmt.Fprintln(sh.out, "not logged in")
		}
	case "profile":
		err = sh.profile()
	case "post":
		err = sh.post()
	case "mine":
		err = sh.listOwn()
	case "all":
		err = sh.listCommunity()
	case "trash":
		err = sh.listTrash()
	case "read":
		err = sh.read(args)
	case "edit":
		err = sh.edit(args)
	case "rm":
		err = sh.withBlogID(args, sh.svc.SoftDelete, "moved to trash")
	case "restore":
		err = sh.withBlogID(args, sh.svc.Restore, "restored")
	case "purge":
		err = sh.withBlogID(args, sh.svc.PermanentDelete, "permanently deleted")
	case "comment":
		err = sh.comment(args)
	case "react":
		err = sh.react(args)
	case "stats":
		err = sh.stats()
	case "users":
		err = sh.users()
	case "role":
		err = sh.setRole(args)
	default:
		fmt.Fprintf(sh.out, "unknown command %q, try 'help'\n", cmd)
	}
	if err != nil {
		fmt.Fprintln(sh.out, "error:", friendly(err))
	}
}

func (sh *shell) help() {
	fmt.Fprint(sh.out, `  register                create an account and sign in
  login <user>            sign in (prompts for password)
  logout | whoami | profile
  post                    write a new blog (prompts for title/body)
  mine | all | trash      list your posts, community posts, your trash
  read <id>               show one post with comments and reactions
  edit <id>               rewrite an owned post
  rm | restore | purge <id>
  comment <id>            comment on a post (prompts for text)
  react <id> like|dislike
  stats                   your dashboard counters
  users                   list users (admin)
  role <id> user|admin    change a user's role (admin)
  quit
`)
}

func (sh *shell) prompt(label string) (string, error) {
	fmt.Fprintf(sh.out, "%s: ", label)
	line, err := sh.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (sh *shell) register() error {
	in := services.RegisterInput{}
	fields := []struct {
		label string
		dst   *string
	}{
		{"first name", &in.FirstName},
		{"last name", &in.LastName},
		{"contact", &in.Contact},
		{"email", &in.Email},
		{"bio", &in.Bio},
		{"user name", &in.UserName},
		{"password", &in.Password},
	}
	for _, f := range fields {
		v, err := sh.prompt(f.label)
		if err != nil {
			return err
		}
		if v == "" {
			return fmt.Errorf("%s must not be empty", f.label)
		}
		*f.dst = v
	}
	if err := sh.svc.Register(sh.sess, in); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "welcome, %s\n", in.UserName)
	return nil
}

func (sh *shell) login(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: login <user>")
	}
	password, err := sh.prompt("password")
	if err != nil {
		return err
	}
	if err := sh.svc.Authenticate(sh.sess, args[0], password); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "welcome back, %s\n", sh.sess.UserName())
	return nil
}

func (sh *shell) profile() error {
	p, err := sh.svc.Profile(sh.sess)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "#%d %s (%s) <%s> role=%s joined=%s\n  %s\n",
		p.ID, p.DisplayName(), p.UserName, p.Email, p.Role,
		p.CreatedAt.Format("2006-01-02"), p.Bio)
	return nil
}

func (sh *shell) post() error {
	title, err := sh.prompt("title")
	if err != nil {
		return err
	}
	body, err := sh.prompt("body")
	if err != nil {
		return err
	}
	if err := sh.svc.CreateBlog(sh.sess, title, body); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "published")
	return nil
}

func (sh *shell) listOwn() error {
	blogs, err := sh.svc.ListOwnBlogs(sh.sess)
	if err != nil {
		return err
	}
	for _, b := range blogs {
		fmt.Fprintf(sh.out, "  [%d] %s (%s)\n", b.ID, b.Title, b.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (sh *shell) listCommunity() error {
	blogs, err := sh.svc.ListCommunityBlogs()
	if err != nil {
		return err
	}
	for _, b := range blogs {
		fmt.Fprintf(sh.out, "  [%d] %s — %s (%s)\n",
			b.ID, b.Title, b.Author.DisplayName(), b.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (sh *shell) listTrash() error {
	blogs, err := sh.svc.ListTrashed(sh.sess)
	if err != nil {
		return err
	}
	for _, b := range blogs {
		fmt.Fprintf(sh.out, "  [%d] %s (%s)\n", b.ID, b.Title, b.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (sh *shell) read(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	blogs, err := sh.svc.ListCommunityBlogs()
	if err != nil {
		return err
	}
	for _, b := range blogs {
		if b.ID != id {
			continue
		}
		fmt.Fprintf(sh.out, "%s — %s\n%s\n", b.Title, b.Author.DisplayName(), render.Markdown(b.Body))
		summary, err := sh.svc.ReactionSummary(sh.sess, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "likes: %d  dislikes: %d", summary.Likes, summary.Dislikes)
		if summary.UserReaction != "" {
			fmt.Fprintf(sh.out, "  (you: %s)", summary.UserReaction)
		}
		fmt.Fprintln(sh.out)
		comments, err := sh.svc.ListComments(id)
		if err != nil {
			return err
		}
		for _, c := range comments {
			fmt.Fprintf(sh.out, "  %s: %s\n", c.User.DisplayName(), c.Text)
		}
		return nil
	}
	return services.ErrNotFound
}

func (sh *shell) edit(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	title, err := sh.prompt("title")
	if err != nil {
		return err
	}
	body, err := sh.prompt("body")
	if err != nil {
		return err
	}
	if err := sh.svc.UpdateBlog(sh.sess, id, title, body); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "updated")
	return nil
}

func (sh *shell) withBlogID(args []string, op func(*session.Session, uint) error, done string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := op(sh.sess, id); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, done)
	return nil
}

func (sh *shell) comment(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	text, err := sh.prompt("comment")
	if err != nil {
		return err
	}
	if err := sh.svc.AddComment(sh.sess, id, text); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "comment added")
	return nil
}

func (sh *shell) react(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: react <id> like|dislike")
	}
	id, err := parseID(args[:1])
	if err != nil {
		return err
	}
	if err := sh.svc.SetReaction(sh.sess, id, args[1]); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "reaction recorded")
	return nil
}

func (sh *shell) stats() error {
	stats, err := sh.svc.UserStatistics(sh.sess)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "posts: %d  trash: %d  community: %d  comments: %d  likes: %d  dislikes: %d\n",
		stats.UserPosts, stats.TrashPosts, stats.CommunityPosts,
		stats.UserComments, stats.LikesReceived, stats.DislikesReceived)
	return nil
}

func (sh *shell) users() error {
	users, err := sh.svc.ListUsers(sh.sess)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(sh.out, "no users visible (admin only)")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(sh.out, "  [%d] %s <%s> role=%s joined=%s\n",
			u.ID, u.UserName, u.Email, u.Role, u.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func (sh *shell) setRole(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: role <id> user|admin")
	}
	id, err := parseID(args[:1])
	if err != nil {
		return err
	}
	if err := sh.svc.SetUserRole(sh.sess, id, args[1]); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "role updated")
	return nil
}

func parseID(args []string) (uint, error) {
	if len(args) < 1 {
		return 0, errors.New("missing id")
	}
	n, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad id %q", args[0])
	}
	return uint(n), nil
}

// friendly maps error kinds to messages a user can act on.
func friendly(err error) string {
	switch {
	case errors.Is(err, services.ErrNoSession):
		return "please log in first"
	case errors.Is(err, services.ErrDuplicate):
		return "that user name or email is already registered"
	case errors.Is(err, services.ErrNotFound):
		return "no such item (or it isn't yours)"
	case errors.Is(err, services.ErrNotAuthorized):
		return "admin access required"
	case errors.Is(err, services.ErrUnavailable):
		return "the database is unavailable, try again"
	}
	return err.Error()
}
