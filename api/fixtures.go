package api

import (
	"sync"
	"time"

	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/shule/client"
	"github.com/trezcool/shule/core/user"
)

// Account is a backend login. Fixture accounts stand in for the real
// backend's user table.
type Account struct {
	Username string
	Password string
	Role     user.Role
	Profile  user.Profile

	passwordHash []byte
}

func (a *Account) setPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.passwordHash = hash
	return nil
}

func (a Account) checkPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(a.passwordHash, []byte(pwd))
}

// directory is the in-memory account/content table behind the handlers.
type directory struct {
	mutex    sync.RWMutex
	accounts map[int]*Account
	byUname  map[string]*Account

	attendance map[int][]client.AttendanceDay
	fees       map[int][]client.FeeInvoice
	chats      map[int][]client.ChatThread
	messages   map[int][]client.ChatMessage
	stories    []client.Story
	storyPK    int
}

func newDirectory(accounts []Account) *directory {
	dir := &directory{
		accounts:   make(map[int]*Account, len(accounts)),
		byUname:    make(map[string]*Account, len(accounts)),
		attendance: make(map[int][]client.AttendanceDay),
		fees:       make(map[int][]client.FeeInvoice),
		chats:      make(map[int][]client.ChatThread),
		messages:   make(map[int][]client.ChatMessage),
	}
	for i := range accounts {
		acct := accounts[i]
		if len(acct.passwordHash) == 0 {
			_ = (&acct).setPassword(acct.Password)
		}
		acct.Profile.Role = acct.Role.String()
		dir.accounts[acct.Profile.ID] = &acct
		dir.byUname[acct.Username] = &acct
	}
	dir.seedDemoContent()
	return dir
}

func (dir *directory) getByUsername(uname string) (Account, error) {
	dir.mutex.RLock()
	defer dir.mutex.RUnlock()
	if acct, ok := dir.byUname[uname]; ok {
		return *acct, nil
	}
	return Account{}, errAuthenticationFailed
}

func (dir *directory) getByID(id int) (Account, error) {
	dir.mutex.RLock()
	defer dir.mutex.RUnlock()
	if acct, ok := dir.accounts[id]; ok {
		return *acct, nil
	}
	return Account{}, errUnauthorized
}

func (dir *directory) addStory(story client.Story) client.Story {
	dir.mutex.Lock()
	defer dir.mutex.Unlock()
	dir.storyPK++
	story.ID = dir.storyPK
	dir.stories = append(dir.stories, story)
	return story
}

// DemoAccounts returns one fixture login per role (password "Shule@123"
// everywhere) with enough canned content to walk every screen.
func DemoAccounts() []Account {
	return []Account{
		{
			Username: "head.office", Password: "Shule@123", Role: user.RoleAdmin,
			Profile: user.Profile{
				ID: 1, Name: "Amina Tendo",
				Email:  null.StringFrom("amina@shule.cd"),
				Branch: null.StringFrom("Head Office"),
			},
		},
		{
			Username: "gombe.branch", Password: "Shule@123", Role: user.RoleFranchisee,
			Profile: user.Profile{
				ID: 2, Name: "Didier Kasongo",
				BranchID: null.IntFrom(4),
				Branch:   null.StringFrom("Gombe"),
			},
		},
		{
			Username: "asha.t", Password: "Shule@123", Role: user.RoleTeacher,
			Profile: user.Profile{
				ID: 3, Name: "Asha Mwila",
				Subject:   null.StringFrom("Mathematics"),
				ClassName: null.StringFrom("P4"),
				Branch:    null.StringFrom("Gombe"),
			},
		},
		{
			Username: "kato.s", Password: "Shule@123", Role: user.RoleStudent,
			Profile: user.Profile{
				ID: 4, Name: "Kato Ilunga",
				FatherName:  null.StringFrom("Jean Ilunga"),
				ClassName:   null.StringFrom("P4"),
				SectionName: null.StringFrom("A"),
				Branch:      null.StringFrom("Gombe"),
			},
		},
		{
			Username: "tuition.t", Password: "Shule@123", Role: user.RoleTuitionTeacher,
			Profile:  user.Profile{ID: 5, Name: "Grace Banda", Subject: null.StringFrom("Physics")},
		},
		{
			Username: "tuition.s", Password: "Shule@123", Role: user.RoleTuitionStudent,
			Profile:  user.Profile{ID: 6, Name: "Moises Kalala", ClassName: null.StringFrom("S2")},
		},
		{
			Username: "captain", Password: "Shule@123", Role: user.RoleCaptain,
			Profile:  user.Profile{ID: 7, Name: "Nadia Kimbo", ClassName: null.StringFrom("P6")},
		},
		{
			Username: "dev", Password: "Shule@123", Role: user.RoleDeveloper,
			Profile:  user.Profile{ID: 8, Name: "Trez M", Email: null.StringFrom("dev@shule.cd")},
		},
	}
}

// seedDemoContent fills the directory with canned lists for the demo accounts.
func (dir *directory) seedDemoContent() {
	now := time.Now().UTC()

	for id := range dir.accounts {
		dir.attendance[id] = []client.AttendanceDay{
			{Date: "2026-08-03", Status: client.AttendancePresent},
			{Date: "2026-08-04", Status: client.AttendanceLate, Remark: null.StringFrom("arrived 09:12")},
			{Date: "2026-08-05", Status: client.AttendanceAbsent, Remark: null.StringFrom("sick leave")},
			{Date: "2026-08-06", Status: client.AttendancePresent},
			{Date: "2026-08-07", Status: client.AttendanceHoliday},
		}
		dir.fees[id] = []client.FeeInvoice{
			{ID: 1, Title: "Term 2 tuition", Amount: 120, DueDate: "2026-07-15", Paid: true, PaidAt: null.StringFrom("2026-07-10")},
			{ID: 2, Title: "Term 3 tuition", Amount: 120, DueDate: "2026-09-15"},
			{ID: 3, Title: "Sports kit", Amount: 18.5, DueDate: "2026-09-01"},
		}
		dir.chats[id] = []client.ChatThread{
			{ID: 1, Name: "P4 Parents", LastMessage: null.StringFrom("Trip forms due Friday"), LastMessageAt: null.TimeFrom(now.Add(-2 * time.Hour)), Unread: 3},
			{ID: 2, Name: "Asha Mwila", LastMessage: null.StringFrom("Karibu!"), LastMessageAt: null.TimeFrom(now.Add(-26 * time.Hour))},
		}
	}

	dir.messages[1] = []client.ChatMessage{
		{ID: 1, ThreadID: 1, Sender: "Asha Mwila", Body: "Trip forms due Friday", SentAt: now.Add(-2 * time.Hour)},
		{ID: 2, ThreadID: 1, Sender: "Didier Kasongo", Body: "Noted, thanks", SentAt: now.Add(-1 * time.Hour)},
	}

	dir.storyPK = 2
	dir.stories = []client.Story{
		{ID: 1, Caption: "Science fair winners!", MediaURL: "/media/stories/1.jpg", PostedBy: "Asha Mwila", PostedAt: now.Add(-48 * time.Hour)},
		{ID: 2, Caption: "Sports day highlights", MediaURL: "/media/stories/2.mp4", PostedBy: "Gombe", PostedAt: now.Add(-12 * time.Hour)},
	}
}
