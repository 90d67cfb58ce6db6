// pkg/include/skiplist.go
package include

// standardHeaders are C, C++ and POSIX headers that never need extra flags.
var standardHeaders = newNameSet(
	"assert.h", "complex.h", "ctype.h", "errno.h", "fenv.h", "float.h", "inttypes.h", "iso646.h",
	"limits.h", "locale.h", "math.h", "setjmp.h", "signal.h", "stdalign.h", "stdarg.h", "stdatomic.h",
	"stdbool.h", "stddef.h", "stdint.h", "stdio.h", "stdlib.h", "stdnoreturn.h", "string.h",
	"tgmath.h", "threads.h", "time.h", "uchar.h", "wchar.h", "wctype.h", "cstdlib", "csignal",
	"csetjmp", "cstdarg", "typeinfo", "typeindex", "type_traits", "bitset", "functional", "utility",
	"ctime", "chrono", "cstddef", "initializer_list", "tuple", "any", "optional", "variant", "new",
	"memory", "scoped_allocator", "memory_resource", "climits", "cfloat", "cstring", "cctype",
	"cstdint", "cinttypes", "limits", "exception", "stdexcept", "cassert", "system_error", "cerrno",
	"array", "vector", "deque", "list", "forward_list", "set", "map", "unordered_set",
	"unordered_map", "stack", "queue", "algorithm", "execution", "iterator", "cmath", "complex",
	"valarray", "random", "numeric", "ratio", "cfenv", "iosfwd", "ios", "istream", "ostream",
	"iostream", "fstream", "sstream", "iomanip", "streambuf", "cstdio", "locale", "clocale", "regex",
	"atomic", "thread", "mutex", "shared_mutex", "future", "condition_variable", "filesystem",
	"compare", "charconv", "syncstream", "strstream", "codecvt", "glibc", "string", "windows.h",
)
