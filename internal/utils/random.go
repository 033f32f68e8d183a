package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/service"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

var designations = []string{"HR", "Manager", "Sales"}
var genders = []string{"M", "F"}
var courses = []string{"MCA", "BCA", "BSC"}

const digits = "0123456789"

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

// GenerateEmailLocalPart 把中文名转成拼音，再追加几位随机数字
func GenerateEmailLocalPart(chineseName string) string {
	local := strings.Join(pinyin.LazyConvert(chineseName, nil), "")

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local
}

func GenerateRandomPhone() string {
	phone := "1"
	for i := 0; i < 10; i++ {
		phone += string(digits[rand.Intn(len(digits))])
	}
	return phone
}

// 用 Fisher-Yates 洗牌算法选出随机的课程组合，以逗号拼接
func GenerateRandomCourses() string {
	picked := make([]string, len(courses))
	copy(picked, courses)

	for i := len(picked) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		picked[i], picked[j] = picked[j], picked[i]
	}

	n := rand.Intn(len(picked)) + 1

	return strings.Join(picked[:n], ",")
}

func GenerateRandomEmployee(emailDomain string) service.CreateEmployeeInput {
	name := GenerateRandomChineseName()

	return service.CreateEmployeeInput{
		Name:        name,
		Email:       fmt.Sprintf("%s@%s", GenerateEmailLocalPart(name), emailDomain),
		Phone:       GenerateRandomPhone(),
		Designation: designations[rand.Intn(len(designations))],
		Gender:      genders[rand.Intn(len(genders))],
		Courses:     GenerateRandomCourses(),
	}
}
