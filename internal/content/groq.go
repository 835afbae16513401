package content

const postFilter = `_type == "post" && defined(publishedAt)`

const categoryFilter = `(!defined($category) || $category in categories[]->slug.current)`

const mainImageProjection = `mainImage {
    asset->{_id, url},
    alt,
    caption
  }`

const postCardProjection = `{
  _id,
  title,
  slug,
  publishedAt,
  excerpt,
  ` + mainImageProjection + `,
  categories[]->{_id, title, slug},
  author->{name, slug}
}`

const groqLatestPosts = `*[` + postFilter + `] | order(publishedAt desc)[0...10] ` + postCardProjection

const groqPost = `*[_type == "post" && slug.current == $slug][0] {
  _id,
  title,
  slug,
  publishedAt,
  excerpt,
  ` + mainImageProjection + `,
  categories[]->{_id, title, slug, description},
  author->{
    name,
    slug,
    bio,
    image {
      asset->{_id, url}
    }
  },
  body
}`

const groqPosts = `*[` + postFilter + ` && ` + categoryFilter + `] | order(publishedAt desc)[$start...$end] ` + postCardProjection

const groqPostCount = `count(*[` + postFilter + ` && ` + categoryFilter + `])`

const groqCategories = `*[_type == "category"] | order(title asc) {
  title,
  slug,
  description,
  "postCount": count(*[_type == "post" && references(^._id)])
}`

const groqPostsByAuthor = `*[` + postFilter + ` && author->slug.current == $authorSlug] | order(publishedAt desc) {
  _id,
  title,
  slug,
  publishedAt,
  excerpt,
  ` + mainImageProjection + `,
  categories[]->{_id, title, slug}
}`

const groqAuthor = `*[_type == "author" && slug.current == $slug][0] {
  name,
  slug,
  bio,
  image {
    asset->{_id, url}
  }
}`

const groqSearchPosts = `*[` + postFilter + ` && (title match $query || excerpt match $query)] | order(publishedAt desc) ` + postCardProjection

const groqRelatedPosts = `*[` + postFilter + ` && _id != $postId && count(categories[]._ref[@ in $categoryIds]) > 0] | order(publishedAt desc)[0...$limit] ` + postCardProjection
